package service

import (
	"context"

	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/store"
	"github.com/MKhiriev/go-student-registry/models"
)

type studentService struct {
	studentRepository store.StudentRepository

	logger *logger.Logger
}

func NewStudentService(studentRepository store.StudentRepository, logger *logger.Logger) StudentService {
	return &studentService{
		studentRepository: studentRepository,
		logger:            logger,
	}
}

func (s *studentService) List(ctx context.Context) ([]models.Student, error) {
	return s.studentRepository.List(ctx)
}

func (s *studentService) Create(ctx context.Context, draft models.StudentDraft) (models.Student, error) {
	return s.studentRepository.Create(ctx, draft)
}

func (s *studentService) Delete(ctx context.Context, id int64) error {
	return s.studentRepository.Delete(ctx, id)
}
