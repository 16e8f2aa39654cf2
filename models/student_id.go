package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// ErrEmptyStudentID is returned when an id on the wire is null or empty.
var ErrEmptyStudentID = errors.New("student id is empty")

// StudentID is the server-assigned key of a record. The client treats it as
// opaque text: the collection may hand out numbers or strings, and both are
// accepted as-is.
type StudentID string

// StudentIDFromInt converts a numeric key of the reference server.
func StudentIDFromInt(id int64) StudentID {
	return StudentID(strconv.FormatInt(id, 10))
}

func (id StudentID) String() string {
	return string(id)
}

// IsZero reports whether the id was never assigned.
func (id StudentID) IsZero() bool {
	return id == ""
}

// MarshalJSON writes integer ids as JSON numbers and everything else as strings.
func (id StudentID) MarshalJSON() ([]byte, error) {
	if isIntegerLiteral(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (id *StudentID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return ErrEmptyStudentID
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return ErrEmptyStudentID
		}
		*id = StudentID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = StudentID(n.String())
	return nil
}

func isIntegerLiteral(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
	}
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
