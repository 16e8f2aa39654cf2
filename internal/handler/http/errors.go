// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidAccessKey is logged when the X-API-Key header is missing or
	// does not match the configured key.
	ErrInvalidAccessKey = errors.New("invalid access key")

	// ErrMalformedJSON is logged when a request body cannot be decoded.
	ErrMalformedJSON = errors.New("malformed json body")

	// ErrInvalidStudentID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidStudentID = errors.New("invalid student id")
)
