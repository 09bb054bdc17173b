package dataproduct

import "fmt"

// PermissionDeniedError marks an upstream call the caller is not
// authorized for. At the request top level it is terminal; for a single
// entry group the listing skips the group and continues.
type PermissionDeniedError struct {
	Resource string
	Err      error
}

func (e PermissionDeniedError) Error() string {
	return fmt.Sprintf("permission denied accessing %q: %v", e.Resource, e.Err)
}

func (e PermissionDeniedError) Unwrap() error {
	return e.Err
}

// NotFoundError marks an upstream resource (typically the project or
// location) that does not exist.
type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("could not find %q: %v", e.Resource, e.Err)
}

func (e NotFoundError) Unwrap() error {
	return e.Err
}
