// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/campus-found/models"
)

// Field names accepted by [ItemValidator].
const (
	FieldTitle           = "title"
	FieldCategory        = "category"
	FieldHiddenDetail    = "hidden_detail"
	FieldFoundAt         = "found_at"
	FieldBuildingID      = "building_id"
	FieldSecurityPointID = "security_point_id"
	FieldCoordinates     = "coordinates"
	FieldStatus          = "status"
)

type ItemValidator struct {
}

func NewItemValidator() Validator {
	return &ItemValidator{}
}

func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ReportItemRequest:
		return v.validateReport(value, fields...)
	case *models.ReportItemRequest:
		return v.validateReport(*value, fields...)

	case models.ItemFilter:
		return v.validateFilter(value, fields...)
	case *models.ItemFilter:
		return v.validateFilter(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateReport(req models.ReportItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldCategory, FieldHiddenDetail, FieldFoundAt,
			FieldBuildingID, FieldSecurityPointID, FieldCoordinates}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(req.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldCategory:
			if strings.TrimSpace(req.Category) == "" {
				return ErrEmptyCategory
			}
		case FieldHiddenDetail:
			if req.HiddenDetail == "" {
				return ErrEmptyHiddenDetail
			}
		case FieldFoundAt:
			if strings.TrimSpace(req.FoundAt) == "" {
				return ErrEmptyFoundAt
			}
		case FieldBuildingID:
			if req.BuildingID <= 0 {
				return ErrInvalidBuilding
			}
		case FieldSecurityPointID:
			if req.SecurityPointID <= 0 {
				return ErrInvalidSecurityPoint
			}
		case FieldCoordinates:
			if req.Latitude < -90 || req.Latitude > 90 {
				return ErrInvalidLatitude
			}
			if req.Longitude < -180 || req.Longitude > 180 {
				return ErrInvalidLongitude
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ItemValidator) validateFilter(filter models.ItemFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if filter.Status != "" && !filter.Status.Valid() {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
