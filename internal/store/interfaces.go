package store

import (
	"context"

	"github.com/MKhiriev/go-student-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/student_repository_mock.go -package=mock

// StudentRepository persists the student collection of the reference server.
type StudentRepository interface {
	// List returns every record ordered by id. An empty collection is an
	// empty, non-nil slice.
	List(ctx context.Context) ([]models.Student, error)

	// Create stores draft and returns it with the assigned id. A NIM that is
	// already taken yields ErrNIMAlreadyExists.
	Create(ctx context.Context, draft models.StudentDraft) (models.Student, error)

	// Delete removes the record with the given id, or returns
	// ErrStudentNotFound.
	Delete(ctx context.Context, id int64) error
}
