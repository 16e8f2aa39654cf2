package service

// StudentServiceWrapper defines middleware composition for StudentService.
// Implementations wrap an existing StudentService to add behavior such as
// validation.
type StudentServiceWrapper interface {
	Wrap(StudentService) StudentService // returns a decorated StudentService applying additional behavior
}
