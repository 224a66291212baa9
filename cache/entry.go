package cache

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/mapfilefs/buffer"
)

// Entry is a cached map file.
type Entry struct {
	ID      int            // map identifier
	Expired bool           // text is outdated and will be re-generated
	Text    *buffer.Buffer // generated map file
}

// Compare orders entries by identifier.
func Compare(a, b *Entry) int {
	return cmp.Compare(a.ID, b.ID)
}

// Release drops the text of an entry. The buffer itself is left intact, as
// snapshots handed out by Cache.Entries may still refer to it.
func Release(e *Entry) {
	if e != nil {
		e.Text = nil
	}
}

// Duplicate creates an independent copy of an entry.
func Duplicate(e *Entry) (*Entry, error) {
	c := &Entry{ID: e.ID, Expired: e.Expired}
	if e.Text != nil {
		c.Text = e.Text.Clone()
	}
	return c, nil
}

// Size returns the length of the text of an entry in bytes.
func (e *Entry) Size() int {
	return e.Text.Len()
}

func (e *Entry) String() string {
	if e.Expired {
		return fmt.Sprintf("#%d (expired)", e.ID)
	}
	return fmt.Sprintf("#%d", e.ID)
}
