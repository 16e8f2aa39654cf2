package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-student-registry/models"
)

// memoryStudentRepository keeps the collection in process memory. Ids are
// never reused within a process.
type memoryStudentRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]models.Student
	nims   map[string]int64
}

// NewMemoryStudentRepository returns an empty in-memory [StudentRepository].
func NewMemoryStudentRepository() StudentRepository {
	return &memoryStudentRepository{
		nextID: 1,
		byID:   make(map[int64]models.Student),
		nims:   make(map[string]int64),
	}
}

func (m *memoryStudentRepository) List(ctx context.Context) ([]models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int64, 0, len(m.byID))
	for id := range m.byID {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	students := make([]models.Student, 0, len(ids))
	for _, id := range ids {
		students = append(students, m.byID[id])
	}

	return students, nil
}

func (m *memoryStudentRepository) Create(ctx context.Context, draft models.StudentDraft) (models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.nims[draft.NIM]; taken {
		return models.Student{}, ErrNIMAlreadyExists
	}

	id := m.nextID
	m.nextID++
	student := draft.Student(models.StudentIDFromInt(id))
	m.byID[id] = student
	m.nims[student.NIM] = id

	return student, nil
}

func (m *memoryStudentRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	student, ok := m.byID[id]
	if !ok {
		return ErrStudentNotFound
	}
	delete(m.byID, id)
	delete(m.nims, student.NIM)

	return nil
}
