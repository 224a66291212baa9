package bstree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("bstree: invalid configuration")
	// ErrAllocation signals that no node could be allocated for an insertion.
	// The tree is left unmodified.
	ErrAllocation = errors.New("bstree: node allocation failed")
	// ErrDuplication signals that a payload could not be duplicated during Copy.
	ErrDuplication = errors.New("bstree: payload duplication failed")
	// ErrSameTree signals an attempt to copy a tree into itself.
	ErrSameTree = errors.New("bstree: source and destination are the same tree")
)
