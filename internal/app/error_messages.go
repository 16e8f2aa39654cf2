// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by both the
// student registry client and the reference collection server.
//
// Msg* constants are human-readable strings written into HTTP response
// bodies, user notifications and log entries. Keeping them in one place
// keeps the wording identical on both sides of the wire.
package app

// Server-side response messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as a student draft.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgIncompleteData is returned when one of nim, nama or jurusan is
	// empty after trimming.
	MsgIncompleteData = "incomplete data: nim, nama and jurusan are required"

	// MsgInvalidStudentID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidStudentID = "invalid student ID"

	// MsgNIMAlreadyExists is returned when a record with the same NIM is
	// already stored.
	MsgNIMAlreadyExists = "NIM already registered"

	// MsgStudentNotFound is returned when a delete targets an unknown id.
	MsgStudentNotFound = "student not found"

	// MsgStudentDeleted acknowledges a successful delete.
	MsgStudentDeleted = "student deleted"

	// MsgAccessDenied is returned when the static access key is missing or
	// does not match.
	MsgAccessDenied = "access denied"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)

// Client-side notification messages.
const (
	MsgConnecting          = "Connecting to database..."
	MsgConnectionOK        = "Connected to the API"
	MsgConnectionFailed    = "Cannot connect to the API. Check the server URL and that the server is running."
	MsgFieldsRequired      = "All fields must be filled in!"
	MsgStudentAdded        = "Student added! ID: %s"
	MsgStudentRemoved      = "Student deleted! ID: %s"
	MsgDuplicateNIM        = "NIM already registered!"
	MsgIncompleteDraft     = "Incomplete data!"
	MsgSaveFailed          = "Failed to save data"
	MsgNotFound            = "Student not found!"
	MsgInvalidID           = "Invalid student ID!"
	MsgDeleteFailed        = "Failed to delete data"
	MsgMalformedResponse   = "The server sent an unexpected response"
	MsgDeleteCancelled     = "Deletion cancelled."
	MsgEditUnderDevelop    = "Edit feature is under development!"
	MsgNoStudents          = "No students yet. Press n to add one."
	MsgCopiedNIM           = "NIM copied to clipboard"
	MsgConfirmDeleteFormat = "Delete student %s (%s)? [y/n]"
)
