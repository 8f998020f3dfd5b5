package set

import "github.com/pkg/errors"

var (
	// ErrRepresentationMismatch - a binary operation requires backings it
	// was not given, e.g. subset across an ordered and a hash-keyed set,
	// or two ordered sets built with different comparators.
	ErrRepresentationMismatch = errors.New("representation mismatch between set operands")

	// ErrDuplicateKey - an index built with RejectDuplicates saw a repeated key.
	ErrDuplicateKey = errors.New("duplicate index key")

	// ErrNotFound - a lookup miss in an enumeration or an index.
	ErrNotFound = errors.New("item not found")

	// ErrInvalidComparator - a caller comparator was caught violating the
	// ordering contract. Detection is opportunistic, never guaranteed.
	ErrInvalidComparator = errors.New("comparator violates ordering contract")

	// ErrUnsupported - the operation is not implemented for the backing.
	ErrUnsupported = errors.New("operation unsupported for this set backing")

	// ErrInvalidConfiguration - conflicting construction arguments.
	ErrInvalidConfiguration = errors.New("invalid set configuration")
)
