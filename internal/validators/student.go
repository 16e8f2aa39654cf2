package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-student-registry/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldNIM targets the student number.
	FieldNIM = "nim"

	// FieldName targets the display name.
	FieldName = "nama"

	// FieldMajor targets the major (category label).
	FieldMajor = "jurusan"
)

var draftFields = []string{FieldNIM, FieldName, FieldMajor}

// StudentValidator checks presence of student fields. It accepts
// models.StudentDraft (value or pointer), a client-side models.StudentID and
// the server's int64 key.
//
// Presence means non-empty after trimming surrounding whitespace; no format
// rules are applied to the values themselves.
type StudentValidator struct {
}

func NewStudentValidator() Validator {
	return &StudentValidator{}
}

func (v *StudentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StudentDraft:
		return v.validateDraft(value, fields...)
	case *models.StudentDraft:
		return v.validateDraft(*value, fields...)

	case models.StudentID:
		if isBlank(value.String()) {
			return ErrInvalidID
		}
		return nil
	case int64:
		return validateID(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *StudentValidator) validateDraft(draft models.StudentDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = draftFields
	}

	for _, f := range fields {
		switch f {
		case FieldNIM:
			if isBlank(draft.NIM) {
				return incomplete(ErrEmptyNIM)
			}
		case FieldName:
			if isBlank(draft.Name) {
				return incomplete(ErrEmptyName)
			}
		case FieldMajor:
			if isBlank(draft.Major) {
				return incomplete(ErrEmptyMajor)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateID(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func incomplete(err error) error {
	return fmt.Errorf("%w: %w", ErrIncompleteStudent, err)
}
