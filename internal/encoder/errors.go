package encoder

import "errors"

var (
	// ErrUnknownEntity is returned when a buffer holds an entity kind the
	// encoder does not handle.
	ErrUnknownEntity = errors.New("unknown entity kind")

	// ErrCannotClassify is returned in change format when an object carries
	// no metadata and therefore cannot be placed into a create, modify, or
	// delete group.
	ErrCannotClassify = errors.New("cannot classify change operation")
)
