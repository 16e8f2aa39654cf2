// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/MKhiriev/go-student-registry/internal/adapter"
	"github.com/MKhiriev/go-student-registry/internal/app"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/validators"
	"github.com/MKhiriev/go-student-registry/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/MKhiriev/go-student-registry/internal/service"

type studentSyncService struct {
	adapter   adapter.CollectionAdapter
	validator validators.Validator
	sink      PresentationSink
	tracer    trace.Tracer
	logger    *logger.Logger

	// opMu serializes operations, resync included.
	opMu sync.Mutex

	mu       sync.RWMutex
	snapshot []models.Student
}

// NewStudentSyncService creates a StudentSyncService that talks to the
// server through collectionAdapter and reports to sink. The snapshot starts
// empty.
func NewStudentSyncService(collectionAdapter adapter.CollectionAdapter, validator validators.Validator, sink PresentationSink, logger *logger.Logger) StudentSyncService {
	return &studentSyncService{
		adapter:   collectionAdapter,
		validator: validator,
		sink:      sink,
		tracer:    otel.Tracer(tracerName),
		logger:    logger,
		snapshot:  []models.Student{},
	}
}

func (s *studentSyncService) List(ctx context.Context) ([]models.Student, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.sink.SetBusy(true)
	defer s.sink.SetBusy(false)

	return s.list(ctx)
}

func (s *studentSyncService) Create(ctx context.Context, draft models.StudentDraft) (models.Student, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	ctx, span := s.tracer.Start(ctx, "StudentSync.Create")
	defer span.End()

	draft = draft.Trimmed()
	if err := s.validator.Validate(ctx, draft); err != nil {
		syncErr := &SyncError{Op: string(opCreate), Kind: KindValidation, Message: app.MsgFieldsRequired, Err: err}
		s.fail(span, syncErr, "draft rejected locally")
		return models.Student{}, syncErr
	}

	s.sink.SetBusy(true)
	defer s.sink.SetBusy(false)

	resp, err := s.adapter.Send(ctx, http.MethodPost, app.CollectionPath, draft)
	if err != nil {
		syncErr := mapAdapterError(opCreate, resp, err)
		s.fail(span, syncErr, "create request failed")
		return models.Student{}, syncErr
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.Status))
	if !resp.IsSuccess() {
		syncErr := classifyStatus(opCreate, resp)
		s.fail(span, syncErr, "create rejected by server")
		return models.Student{}, syncErr
	}

	created, err := decodeCreated(resp.Payload)
	if err != nil {
		syncErr := protocolError(opCreate, resp.Status, err)
		s.fail(span, syncErr, "create response is malformed")
		return models.Student{}, syncErr
	}
	student := draft.Student(created.ID)

	s.logger.Info().
		Str("func", "*studentSyncService.Create").
		Str("id", student.ID.String()).
		Str("nim", student.NIM).
		Msg("student created")
	s.sink.Notify(fmt.Sprintf(app.MsgStudentAdded, student.ID), models.SeveritySuccess)

	// the write happened; a failed resync is reported by list itself
	_, _ = s.list(ctx)

	return student, nil
}

func (s *studentSyncService) Delete(ctx context.Context, id models.StudentID) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	ctx, span := s.tracer.Start(ctx, "StudentSync.Delete", trace.WithAttributes(attribute.String("student.id", id.String())))
	defer span.End()

	if err := s.validator.Validate(ctx, id); err != nil {
		syncErr := &SyncError{Op: string(opDelete), Kind: KindValidation, Message: app.MsgInvalidID, Err: err}
		s.fail(span, syncErr, "id rejected locally")
		return syncErr
	}

	s.sink.SetBusy(true)
	defer s.sink.SetBusy(false)

	resp, err := s.adapter.Send(ctx, http.MethodDelete, studentPath(id), nil)
	if err != nil {
		syncErr := mapAdapterError(opDelete, resp, err)
		s.fail(span, syncErr, "delete request failed")
		return syncErr
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.Status))
	if !resp.IsSuccess() {
		syncErr := classifyStatus(opDelete, resp)
		s.fail(span, syncErr, "delete rejected by server")
		return syncErr
	}

	s.logger.Info().
		Str("func", "*studentSyncService.Delete").
		Str("id", id.String()).
		Msg("student deleted")
	s.sink.Notify(fmt.Sprintf(app.MsgStudentRemoved, id), models.SeveritySuccess)

	_, _ = s.list(ctx)

	return nil
}

func (s *studentSyncService) CheckConnection(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	ctx, span := s.tracer.Start(ctx, "StudentSync.CheckConnection")
	defer span.End()

	s.sink.SetBusy(true)
	defer s.sink.SetBusy(false)

	resp, err := s.adapter.Send(ctx, http.MethodGet, app.CollectionPath, nil)
	if err != nil {
		syncErr := mapAdapterError(opPing, resp, err)
		s.fail(span, syncErr, "connection check failed")
		return syncErr
	}
	if !resp.IsSuccess() {
		syncErr := classifyStatus(opPing, resp)
		s.fail(span, syncErr, "connection check failed")
		return syncErr
	}

	s.sink.Notify(app.MsgConnectionOK, models.SeveritySuccess)
	return nil
}

func (s *studentSyncService) Snapshot() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneStudents(s.snapshot)
}

// list does the GET and the render. Callers hold opMu and manage busy.
func (s *studentSyncService) list(ctx context.Context) ([]models.Student, error) {
	ctx, span := s.tracer.Start(ctx, "StudentSync.List")
	defer span.End()

	resp, err := s.adapter.Send(ctx, http.MethodGet, app.CollectionPath, nil)
	if err != nil {
		syncErr := mapAdapterError(opList, resp, err)
		s.failList(span, syncErr)
		return nil, syncErr
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.Status))
	if !resp.IsSuccess() {
		syncErr := classifyStatus(opList, resp)
		s.failList(span, syncErr)
		return nil, syncErr
	}

	students, err := decodeStudents(resp.Payload)
	if err != nil {
		syncErr := protocolError(opList, resp.Status, err)
		s.failList(span, syncErr)
		return nil, syncErr
	}
	span.SetAttributes(attribute.Int("students.count", len(students)))

	s.mu.Lock()
	s.snapshot = students
	s.mu.Unlock()

	s.logger.Debug().
		Str("func", "*studentSyncService.list").
		Int("count", len(students)).
		Msg("snapshot replaced")
	s.sink.RenderSnapshot(cloneStudents(students))

	return cloneStudents(students), nil
}

func (s *studentSyncService) failList(span trace.Span, syncErr *SyncError) {
	s.fail(span, syncErr, "list failed")
	s.sink.RenderConnectivityFailure()
}

// fail logs, records and notifies a failed operation.
func (s *studentSyncService) fail(span trace.Span, syncErr *SyncError, msg string) {
	span.RecordError(syncErr)
	span.SetStatus(codes.Error, syncErr.Message)

	event := s.logger.Err(syncErr).
		Str("op", syncErr.Op).
		Str("kind", syncErr.Kind.String())
	if syncErr.Status != 0 {
		event = event.Int("status", syncErr.Status)
	}
	event.Msg(msg)

	s.sink.Notify(syncErr.Message, models.SeverityError)
}

// decodeStudents accepts an empty body or JSON null as an empty collection.
func decodeStudents(payload json.RawMessage) ([]models.Student, error) {
	students := []models.Student{}
	if len(payload) == 0 {
		return students, nil
	}
	if err := json.Unmarshal(payload, &students); err != nil {
		return nil, fmt.Errorf("decode student list: %w", err)
	}
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}

func decodeCreated(payload json.RawMessage) (models.MessageResponse, error) {
	var created models.MessageResponse
	if len(payload) == 0 {
		return created, fmt.Errorf("decode create response: empty body")
	}
	if err := json.Unmarshal(payload, &created); err != nil {
		return created, fmt.Errorf("decode create response: %w", err)
	}
	if created.ID.IsZero() {
		return created, fmt.Errorf("decode create response: missing id")
	}
	return created, nil
}

// studentPath is the record path; the id is escaped as a single segment.
func studentPath(id models.StudentID) string {
	return app.CollectionPath + "/" + url.PathEscape(id.String())
}

func cloneStudents(students []models.Student) []models.Student {
	out := make([]models.Student, len(students))
	copy(out, students)
	return out
}
