// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure categories a sync operation can
// end with.
type ErrorKind int

const (
	// KindValidation: input rejected locally or by the server (400).
	KindValidation ErrorKind = iota + 1
	// KindDuplicateKey: the NIM is already registered (409 on create).
	KindDuplicateKey
	// KindNotFound: the target record no longer exists (404 on delete).
	KindNotFound
	// KindConnectivity: no usable response from the server.
	KindConnectivity
	// KindProtocol: a success status with a malformed body.
	KindProtocol
	// KindServer: any other non-2xx status.
	KindServer
)

// Sentinels matched with errors.Is against a *SyncError of the same kind.
var (
	ErrValidation   = errors.New("validation error")
	ErrDuplicateKey = errors.New("duplicate key error")
	ErrNotFound     = errors.New("not found error")
	ErrConnectivity = errors.New("connectivity error")
	ErrProtocol     = errors.New("protocol error")
	ErrServer       = errors.New("server error")
)

var kindSentinels = map[ErrorKind]error{
	KindValidation:   ErrValidation,
	KindDuplicateKey: ErrDuplicateKey,
	KindNotFound:     ErrNotFound,
	KindConnectivity: ErrConnectivity,
	KindProtocol:     ErrProtocol,
	KindServer:       ErrServer,
}

func (k ErrorKind) String() string {
	if err, ok := kindSentinels[k]; ok {
		return err.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// SyncError is the failure outcome of a sync operation.
//
// Message is the human-readable text that was shown to the user. Status is
// the HTTP status that caused the failure, or 0 when none was received.
// Err is the underlying cause, if any.
type SyncError struct {
	Op      string
	Kind    ErrorKind
	Message string
	Status  int
	Err     error
}

func (e *SyncError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is/As.
func (e *SyncError) Unwrap() []error {
	errs := []error{kindSentinels[e.Kind]}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf reports the ErrorKind carried by err, if err is or wraps a
// *SyncError.
func KindOf(err error) (ErrorKind, bool) {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Kind, true
	}
	return 0, false
}
