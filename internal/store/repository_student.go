// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/migrations"
	"github.com/MKhiriev/go-student-registry/models"
)

// studentRepository is the SQL implementation of [StudentRepository]. The
// same code serves sqlite and PostgreSQL; only the placeholder format and
// the unique-violation check differ.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type studentRepository struct {
	*DB
	logger *logger.Logger
}

// NewStudentRepository constructs a [StudentRepository] backed by db.
func NewStudentRepository(db *DB, logger *logger.Logger) StudentRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating student repository")
	return &studentRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListStudentsQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.List").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	students := make([]models.Student, 0, 32)
	for rows.Next() {
		var (
			id int64
			s  models.Student
		)
		if err = rows.Scan(&id, &s.NIM, &s.Name, &s.Major); err != nil {
			log.Err(err).Str("func", "*studentRepository.List").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		s.ID = models.StudentIDFromInt(id)
		students = append(students, s)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*studentRepository.List").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return students, nil
}

// Create inserts draft and scans back the generated id.
//
// Error handling:
//   - unique violation on nim (postgres 23505, sqlite 2067) → [ErrNIMAlreadyExists];
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *studentRepository) Create(ctx context.Context, draft models.StudentDraft) (models.Student, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateStudentQuery(r.builder(), draft)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.Create").Msg("failed to create query")
		return models.Student{}, err
	}

	var id int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if r.isUniqueViolation(err) {
			log.Debug().Str("func", "*studentRepository.Create").Str("nim", draft.NIM).Msg("nim already exists")
			return models.Student{}, ErrNIMAlreadyExists
		}
		log.Err(err).Str("func", "*studentRepository.Create").Str("nim", draft.NIM).Msg("failed to insert student")
		return models.Student{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return draft.Student(models.StudentIDFromInt(id)), nil
}

func (r *studentRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteStudentQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.Delete").Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.Delete").Int64("id", id).Msg("failed to delete student")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrStudentNotFound
	}

	return nil
}

func (r *studentRepository) isUniqueViolation(err error) bool {
	if r.dialect == migrations.DialectPostgres {
		return isPostgresUniqueViolation(err)
	}
	return isSQLiteUniqueViolation(err)
}
