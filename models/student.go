// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Student is a single record of the remote /mahasiswa collection.
//
// ID is assigned by the server and is the only key used for deletion.
// NIM is the human-facing student number and is unique across the collection.
// JSON field names follow the wire contract of the collection endpoint.
type Student struct {
	ID    StudentID `json:"id"`
	NIM   string    `json:"nim"`
	Name  string    `json:"nama"`
	Major string    `json:"jurusan"`
}

// StudentDraft is a not-yet-persisted record as typed by the user.
// It never carries an ID.
type StudentDraft struct {
	NIM   string `json:"nim"`
	Name  string `json:"nama"`
	Major string `json:"jurusan"`
}

// Trimmed returns a copy of the draft with surrounding whitespace removed
// from every field.
func (d StudentDraft) Trimmed() StudentDraft {
	return StudentDraft{
		NIM:   strings.TrimSpace(d.NIM),
		Name:  strings.TrimSpace(d.Name),
		Major: strings.TrimSpace(d.Major),
	}
}

// Student turns the draft into a record with the given server-assigned id.
func (d StudentDraft) Student(id StudentID) Student {
	return Student{ID: id, NIM: d.NIM, Name: d.Name, Major: d.Major}
}
