// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/internal/utils"
	"github.com/MKhiriev/campus-found/models"
	"github.com/go-resty/resty/v2"
)

type httpCampusAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCampusAPI builds a [CampusAPI] talking to the server at address.
// address may omit the scheme, in which case http is assumed.
func NewHTTPCampusAPI(address string, timeout time.Duration, logger *logger.Logger) (CampusAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	return &httpCampusAPI{client: utils.NewHTTPClient(baseURL, timeout), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCampusAPI) SetToken(token string) {
	h.mu.Lock()
	h.token = strings.TrimSpace(token)
	h.mu.Unlock()
}

func (h *httpCampusAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request returns a request bound to ctx that carries the stored token.
func (h *httpCampusAPI) request(ctx context.Context) *resty.Request {
	return h.client.WithBearer(h.Token()).SetContext(ctx)
}

func (h *httpCampusAPI) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

// do sends req and maps transport failures and non-2xx statuses to errors.
func (h *httpCampusAPI) do(req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Int("status", resp.StatusCode()).Str("method", method).Str("path", path).Msg("api error")
		return resp, err
	}
	return resp, nil
}

func (h *httpCampusAPI) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var user models.User
	_, err := h.do(h.jsonRequest(ctx, req).SetResult(&user), resty.MethodPost, "/auth/register")
	return user, err
}

// Login stores the issued token. The Authorization response header is used
// when the body carries no token.
func (h *httpCampusAPI) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var login models.LoginResponse
	resp, err := h.do(h.jsonRequest(ctx, req).SetResult(&login), resty.MethodPost, "/auth/login")
	if err != nil {
		return models.LoginResponse{}, err
	}

	token := login.AccessToken
	if token == "" {
		if token, err = utils.ParseBearerToken(resp.Header().Get("Authorization")); err != nil {
			return models.LoginResponse{}, fmt.Errorf("login response carries no token: %w", err)
		}
		login.AccessToken = token
	}

	h.SetToken(token)
	return login, nil
}

func (h *httpCampusAPI) Me(ctx context.Context) (models.User, error) {
	var user models.User
	_, err := h.do(h.request(ctx).SetResult(&user), resty.MethodGet, "/auth/me")
	return user, err
}

func (h *httpCampusAPI) ListBuildings(ctx context.Context) ([]models.Building, error) {
	var buildings []models.Building
	_, err := h.do(h.request(ctx).SetResult(&buildings), resty.MethodGet, "/buildings/")
	return buildings, err
}

func (h *httpCampusAPI) ListSecurityPoints(ctx context.Context, buildingID int64) ([]models.SecurityPoint, error) {
	var points []models.SecurityPoint
	req := h.request(ctx).SetResult(&points)
	if buildingID > 0 {
		req.SetQueryParam("building_id", strconv.FormatInt(buildingID, 10))
	}
	_, err := h.do(req, resty.MethodGet, "/buildings/security-points")
	return points, err
}

func (h *httpCampusAPI) ReportItem(ctx context.Context, req models.ReportItemRequest) (models.ReportedItem, error) {
	var reported models.ReportedItem
	_, err := h.do(h.jsonRequest(ctx, req).SetResult(&reported), resty.MethodPost, "/items/report")
	return reported, err
}

func (h *httpCampusAPI) UploadItemPhoto(ctx context.Context, itemID int64, fileName string, photo io.Reader) (models.UploadResponse, error) {
	return h.upload(ctx, "/items/report/upload-photo", "item_id", itemID, fileName, photo)
}

func (h *httpCampusAPI) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	var items []models.Item
	req := h.request(ctx).SetResult(&items)
	if filter.Category != "" {
		req.SetQueryParam("category", filter.Category)
	}
	if filter.BuildingID > 0 {
		req.SetQueryParam("building_id", strconv.FormatInt(filter.BuildingID, 10))
	}
	if filter.SecurityPointID > 0 {
		req.SetQueryParam("security_point_id", strconv.FormatInt(filter.SecurityPointID, 10))
	}
	if filter.Status != "" {
		req.SetQueryParam("status", string(filter.Status))
	}
	_, err := h.do(req, resty.MethodGet, "/items/")
	return items, err
}

func (h *httpCampusAPI) GetItem(ctx context.Context, itemID int64) (models.Item, error) {
	var item models.Item
	req := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(itemID, 10)).
		SetResult(&item)
	_, err := h.do(req, resty.MethodGet, "/items/{id}")
	return item, err
}

func (h *httpCampusAPI) ConfirmDrop(ctx context.Context, itemID int64) (models.ItemActionResponse, error) {
	var resp models.ItemActionResponse
	req := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(itemID, 10)).
		SetResult(&resp)
	_, err := h.do(req, resty.MethodPut, "/items/{id}/confirm_drop")
	return resp, err
}

func (h *httpCampusAPI) RequestClaim(ctx context.Context, req models.ClaimRequest) (models.Claim, error) {
	var claim models.Claim
	_, err := h.do(h.jsonRequest(ctx, req).SetResult(&claim), resty.MethodPost, "/claims/request")
	return claim, err
}

func (h *httpCampusAPI) VerifyClaim(ctx context.Context, req models.VerifyClaimRequest) (models.ClaimActionResponse, error) {
	var resp models.ClaimActionResponse
	_, err := h.do(h.jsonRequest(ctx, req).SetResult(&resp), resty.MethodPost, "/claims/verify")
	return resp, err
}

func (h *httpCampusAPI) UploadPickupPhoto(ctx context.Context, claimID int64, fileName string, photo io.Reader) (models.UploadResponse, error) {
	return h.upload(ctx, "/claims/upload-pickup-photo", "claim_id", claimID, fileName, photo)
}

func (h *httpCampusAPI) ListClaims(ctx context.Context, itemID int64) ([]models.Claim, error) {
	var claims []models.Claim
	req := h.request(ctx).SetResult(&claims)
	if itemID > 0 {
		req.SetQueryParam("item_id", strconv.FormatInt(itemID, 10))
	}
	_, err := h.do(req, resty.MethodGet, "/claims/")
	return claims, err
}

func (h *httpCampusAPI) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	_, err := h.do(h.request(ctx).SetResult(&stats), resty.MethodGet, "/admin/stats")
	return stats, err
}

func (h *httpCampusAPI) AdminItems(ctx context.Context, securityPointID int64) ([]models.Item, error) {
	var items []models.Item
	req := h.request(ctx).SetResult(&items)
	if securityPointID > 0 {
		req.SetQueryParam("security_point_id", strconv.FormatInt(securityPointID, 10))
	}
	_, err := h.do(req, resty.MethodGet, "/admin/items")
	return items, err
}

func (h *httpCampusAPI) AdminClaims(ctx context.Context) ([]models.Claim, error) {
	var claims []models.Claim
	_, err := h.do(h.request(ctx).SetResult(&claims), resty.MethodGet, "/admin/claims")
	return claims, err
}

func (h *httpCampusAPI) GenerateMap(ctx context.Context) ([]byte, error) {
	resp, err := h.do(h.request(ctx).SetHeader("Accept", "text/html"), resty.MethodGet, "/map/generate")
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (h *httpCampusAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.do(h.request(ctx).SetHeader("Accept", "text/plain"), resty.MethodGet, "/version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// upload sends photo as the multipart "file" field with the owner id in the
// query string.
func (h *httpCampusAPI) upload(ctx context.Context, path, idParam string, id int64, fileName string, photo io.Reader) (models.UploadResponse, error) {
	var resp models.UploadResponse
	req := h.request(ctx).
		SetQueryParam(idParam, strconv.FormatInt(id, 10)).
		SetFileReader("file", fileName, photo).
		SetResult(&resp)
	_, err := h.do(req, resty.MethodPost, path)
	return resp, err
}
