// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the student registry client
// uses to talk to the remote /mahasiswa collection.
//
// The primary abstraction is [CollectionAdapter]. It performs exactly one
// HTTP exchange per call and reports what happened on the wire; it never
// decides whether a status code is a business success or failure. That
// interpretation belongs to the sync engine in package service.
//
// Error values defined in errors.go distinguish the two failures the
// transport itself can observe: no response at all ([ErrTransport]) and a
// success status with a body that is not JSON ([ErrProtocol]).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-student-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/collection_adapter_mock.go -package=mock

// CollectionAdapter sends requests to the collection API.
//
// Every request carries Content-Type: application/json, the static access
// key header and the tunnel bypass header, plus a per-request trace id.
type CollectionAdapter interface {
	// Send performs method on path (relative to the configured base URL),
	// JSON-encoding body when it is non-nil.
	//
	// A received response is always returned with a nil error, whatever its
	// status. The error is non-nil only when:
	//   - no response was received (DNS, connect, timeout, cancelled ctx):
	//     wraps [ErrTransport];
	//   - a 2xx response body is not valid JSON: wraps [ErrProtocol]; the
	//     returned Response still carries the status.
	Send(ctx context.Context, method, path string, body any) (models.Response, error)
}
