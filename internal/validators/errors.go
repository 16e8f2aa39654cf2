package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrIncompleteStudent is joined with every field presence error below.
	ErrIncompleteStudent = errors.New("incomplete student data")

	ErrEmptyNIM   = errors.New("nim is required")
	ErrEmptyName  = errors.New("nama is required")
	ErrEmptyMajor = errors.New("jurusan is required")
	ErrInvalidID  = errors.New("invalid student ID")
)
