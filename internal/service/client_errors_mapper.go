// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-meal-log/internal/adapter"
	"github.com/MKhiriev/go-meal-log/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case msg == app.MsgUserIDRequired:
			return ErrUserIDRequired
		case msg == app.MsgInvalidData, msg == app.MsgNoUpdateData, msg == app.MsgNoDataProvided:
			return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)
		case strings.HasPrefix(msg, app.MsgMissingRequiredField):
			return fmt.Errorf("%w: %s", ErrMissingRequiredField, strings.TrimPrefix(msg, app.MsgMissingRequiredField))
		}

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgMealNotFound {
			return ErrMealNotFound
		}
		return fmt.Errorf("%w: %s", ErrFoodNotFound, msg)

	case errors.Is(err, adapter.ErrInternalServerError):
		if msg == app.MsgDatabaseError {
			return ErrDatabaseUnavailable
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
