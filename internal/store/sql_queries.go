package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-student-registry/models"
)

const (
	studentsTable = "students"

	columnID    = "id"
	columnNIM   = "nim"
	columnName  = "name"
	columnMajor = "major"
)

func buildListStudentsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(columnID, columnNIM, columnName, columnMajor).
		From(studentsTable).
		OrderBy(columnID).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildCreateStudentQuery renders an INSERT returning the new id. Both
// sqlite (3.35+) and postgres support RETURNING.
func buildCreateStudentQuery(b sq.StatementBuilderType, draft models.StudentDraft) (string, []any, error) {
	query, args, err := b.
		Insert(studentsTable).
		Columns(columnNIM, columnName, columnMajor).
		Values(draft.NIM, draft.Name, draft.Major).
		Suffix("RETURNING " + columnID).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteStudentQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Delete(studentsTable).
		Where(sq.Eq{columnID: id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
