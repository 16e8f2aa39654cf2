// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/MKhiriev/go-student-registry/internal/adapter"
	"github.com/MKhiriev/go-student-registry/internal/app"
	"github.com/MKhiriev/go-student-registry/models"
)

type operation string

const (
	opList   operation = "list"
	opCreate operation = "create"
	opDelete operation = "delete"
	opPing   operation = "ping"
)

type statusRule struct {
	kind    ErrorKind
	message string
}

// statusRules is the per-operation mapping of a non-2xx status to an
// outcome. Statuses missing from byStatus use fallback; when
// serverMessage is set the server-supplied {"message"} replaces the
// fallback text.
type statusRules struct {
	byStatus      map[int]statusRule
	fallback      statusRule
	serverMessage bool
}

var statusTable = map[operation]statusRules{
	opList: {
		fallback: statusRule{KindConnectivity, app.MsgConnectionFailed},
	},
	opPing: {
		fallback: statusRule{KindConnectivity, app.MsgConnectionFailed},
	},
	opCreate: {
		byStatus: map[int]statusRule{
			409: {KindDuplicateKey, app.MsgDuplicateNIM},
			400: {KindValidation, app.MsgIncompleteDraft},
		},
		fallback:      statusRule{KindServer, app.MsgSaveFailed},
		serverMessage: true,
	},
	opDelete: {
		byStatus: map[int]statusRule{
			404: {KindNotFound, app.MsgNotFound},
			400: {KindValidation, app.MsgInvalidID},
		},
		fallback:      statusRule{KindServer, app.MsgDeleteFailed},
		serverMessage: true,
	},
}

// classifyStatus maps a received non-2xx response to a *SyncError. It is a
// pure lookup and performs no I/O.
func classifyStatus(op operation, resp models.Response) *SyncError {
	rules := statusTable[op]

	rule, ok := rules.byStatus[resp.Status]
	if !ok {
		rule = rules.fallback
		if rules.serverMessage {
			if msg := serverMessage(resp.Payload); msg != "" {
				rule.message = msg
			}
		}
	}

	return &SyncError{Op: string(op), Kind: rule.kind, Message: rule.message, Status: resp.Status}
}

// mapAdapterError translates a transport failure into a *SyncError.
func mapAdapterError(op operation, resp models.Response, err error) *SyncError {
	if errors.Is(err, adapter.ErrProtocol) {
		return protocolError(op, resp.Status, err)
	}
	// adapter.ErrTransport and anything unexpected: no usable response.
	return &SyncError{Op: string(op), Kind: KindConnectivity, Message: app.MsgConnectionFailed, Err: err}
}

func protocolError(op operation, status int, err error) *SyncError {
	return &SyncError{Op: string(op), Kind: KindProtocol, Message: app.MsgMalformedResponse, Status: status, Err: err}
}

func serverMessage(payload json.RawMessage) string {
	if len(payload) == 0 {
		return ""
	}
	var body models.MessageResponse
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Message)
}
