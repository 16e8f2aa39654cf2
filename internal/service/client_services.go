package service

import (
	"github.com/MKhiriev/go-student-registry/internal/adapter"
	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/validators"
)

type ClientServices struct {
	SyncService StudentSyncService
	RefreshJob  ClientRefreshJob
}

func NewClientServices(collectionAdapter adapter.CollectionAdapter, sink PresentationSink, logger *logger.Logger) *ClientServices {
	syncSvc := NewStudentSyncService(collectionAdapter, validators.NewStudentValidator(), sink, logger)

	return &ClientServices{
		SyncService: syncSvc,
		RefreshJob:  NewClientRefreshJob(syncSvc),
	}
}
