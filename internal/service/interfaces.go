package service

import (
	"context"

	"github.com/MKhiriev/go-student-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/student_service_mock.go -package=mock

// StudentService is the server-side use case layer of the collection
// endpoint.
type StudentService interface {
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, draft models.StudentDraft) (models.Student, error)
	Delete(ctx context.Context, id int64) error
}
