// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-student-registry/internal/app"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/utils"
	"github.com/MKhiriev/go-student-registry/models"
)

func (h *Handler) listStudents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	students, err := h.services.StudentService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err, "listing students failed")
		return
	}

	log.Debug().Int("count", len(students)).Msg("students listed")
	utils.WriteJSON(w, students, http.StatusOK)
}

func (h *Handler) createStudent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var draft models.StudentDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedJSON, err), "invalid JSON was passed")
		return
	}

	created, err := h.services.StudentService.Create(r.Context(), draft)
	if err != nil {
		h.writeError(w, r, err, "creating student failed")
		return
	}

	log.Info().Str("id", created.ID.String()).Str("nim", created.NIM).Msg("student created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) deleteStudent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidStudentID, err), "invalid id in path")
		return
	}

	if err = h.services.StudentService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err, "deleting student failed")
		return
	}

	log.Info().Int64("id", id).Msg("student deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgStudentDeleted, ID: models.StudentIDFromInt(id)}, http.StatusOK)
}

// writeError maps err to a status and a {"message"} body. 5xx causes are
// logged as errors, the rest at debug level.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	resp := responseFromError(err)

	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg(msg)
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg(msg)
	}

	utils.WriteMessage(w, resp.message, resp.status)
}
