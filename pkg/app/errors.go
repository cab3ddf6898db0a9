package app

import "fmt"

// ValidationError rejects an operation before any mutation happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("app: invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an update or toggle against an id that does not
// exist. Deletes of missing ids are silent no-ops instead.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("app: %s %q not found", e.Kind, e.ID)
}

// StorageError wraps a failed persistence write. The in-memory mutation has
// already been applied when this is returned: the session stays usable, the
// change just is not guaranteed durable.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("app: %s not persisted: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
