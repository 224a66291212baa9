package dllist

import "errors"

var (
	// ErrAllocation signals that no node could be allocated for an insertion.
	// The list is left unmodified.
	ErrAllocation = errors.New("dllist: node allocation failed")
	// ErrDuplication signals that a payload could not be duplicated.
	ErrDuplication = errors.New("dllist: payload duplication failed")
	// ErrSameList signals an attempt to copy a list into itself.
	ErrSameList = errors.New("dllist: source and destination are the same list")
)
