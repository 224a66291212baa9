package bstree

import (
	"fmt"

	"github.com/npillmayer/mapfilefs/nodepool"
)

// Config configures a binary search tree.
type Config[T any] struct {
	// Compare orders payloads. It returns a negative number if a < b, zero
	// if a == b and a positive number if a > b. It has to be a consistent
	// total order. Compare is mandatory.
	Compare func(a, b T) int
	// Free releases a payload. It is called by DeleteAll only; payloads
	// removed with Delete are handed back to the caller.
	Free func(payload T)
	// Dup duplicates a payload for Copy. If Dup is nil, payloads are copied
	// by value.
	Dup func(payload T) (T, error)
	// FreeList allocates tree nodes. If nil, a tree-private free list of
	// unbounded capacity is created.
	FreeList *nodepool.FreeList[Node[T]]
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Free == nil {
		cfg.Free = func(T) {}
	}
	if cfg.Dup == nil {
		cfg.Dup = func(payload T) (T, error) { return payload, nil }
	}
	if cfg.FreeList == nil {
		cfg.FreeList = nodepool.New[Node[T]](nodepool.DefaultSize, 0)
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}
