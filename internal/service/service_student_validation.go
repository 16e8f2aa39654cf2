package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-student-registry/internal/validators"
	"github.com/MKhiriev/go-student-registry/models"
)

// StudentValidationService trims and checks input before handing it to the
// wrapped StudentService.
type StudentValidationService struct {
	inner     StudentService
	validator validators.Validator
}

func NewStudentValidationService() StudentServiceWrapper {
	return &StudentValidationService{
		validator: validators.NewStudentValidator(),
	}
}

func (v *StudentValidationService) List(ctx context.Context) ([]models.Student, error) {
	return v.inner.List(ctx)
}

func (v *StudentValidationService) Create(ctx context.Context, draft models.StudentDraft) (models.Student, error) {
	// nim, nama and jurusan are all required
	draft = draft.Trimmed()
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.Student{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, draft)
}

func (v *StudentValidationService) Delete(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Delete(ctx, id)
}

func (v *StudentValidationService) Wrap(wrapped StudentService) StudentService {
	v.inner = wrapped
	return v
}
