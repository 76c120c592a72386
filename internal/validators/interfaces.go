// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks meal records, new meals, partial meal updates and
// custom food definitions before they leave the client.
//
// A Validator validates a value against all of its rules, or against the
// subset named by the optional field arguments (see the Field* constants).
// Rule violations are reported with the sentinel errors in errors.go.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
