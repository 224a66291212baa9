/*
Package cache holds generated map files, keyed by a numeric map identifier.

A Cache calls a Generator to produce the text of a map file the first time
it is requested, and keeps it until the entry is expired. Expired entries are
re-generated on their next request, or dropped by Evict.

Entries are indexed by a binary search tree (package bstree) for lookup and
are kept in a linked list (package dllist) for enumeration. Clients may
subscribe to cache events (generation, expiration, eviction) which are
broadcast asynchronously.

A Cache is safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package cache

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'mapfilefs'
func tracer() tracing.Trace {
	return tracing.Select("mapfilefs")
}
