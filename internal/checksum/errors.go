package checksum

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a per-file failure.
type ErrorKind int

// Per-file failure kinds.
const (
	KindPathResolution ErrorKind = iota + 1
	KindOpen
	KindRead
)

// Sentinels matched by errors.Is against a *TaskError of the same kind.
var (
	ErrPathResolution = errors.New("path resolution failed")
	ErrOpen           = errors.New("open failed")
	ErrRead           = errors.New("read failed")
)

func (k ErrorKind) String() string {
	switch k {
	case KindPathResolution:
		return "resolve"
	case KindOpen:
		return "open"
	case KindRead:
		return "read"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindPathResolution:
		return ErrPathResolution
	case KindOpen:
		return ErrOpen
	case KindRead:
		return ErrRead
	default:
		return nil
	}
}

// TaskError reports a failure to digest one input path.
type TaskError struct {
	Kind ErrorKind
	// Path is the path as supplied on input, not the resolved one.
	Path string
	Err  error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *TaskError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newTaskError(kind ErrorKind, path string, err error) *TaskError {
	return &TaskError{Kind: kind, Path: path, Err: err}
}
