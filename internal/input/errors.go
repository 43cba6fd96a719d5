package input

import "fmt"

type ErrorKind int

const (
	Other ErrorKind = iota
	NotFound
	PermissionDenied
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	}
	return "io error"
}

// IOError reports a source that could not be opened or read.
type IOError struct {
	Op   string
	Path string
	Kind ErrorKind
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
