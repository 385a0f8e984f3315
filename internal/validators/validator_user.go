// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/campus-found/models"
)

// Field names accepted by [UserValidator].
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldName     = "name"
	FieldPassword = "password"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// UserValidator checks registration and login payloads.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(req.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldEmail:
			if !isEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return ErrEmptyName
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
			if len(req.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if req.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isEmail performs a shape check only: one "@" with text on both sides.
func isEmail(s string) bool {
	local, domain, ok := strings.Cut(s, "@")
	return ok && local != "" && domain != "" && !strings.Contains(domain, "@")
}
