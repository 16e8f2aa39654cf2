package service

import (
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/store"
)

type Services struct {
	StudentService StudentService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		StudentService: NewStudentValidationService().Wrap(NewStudentService(storages.StudentRepository, logger)),
	}
}
