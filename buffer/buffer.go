/*
Package buffer implements an indentation-aware text buffer.

A Buffer collects text as a list of fragments. Appending never copies text
already in the buffer, and whole buffers may be appended to other buffers in
constant time. Output is assembled once, when the buffer is written or
converted to a string.

	var b buffer.Buffer
	b.Printf("MAP\n")
	b.Indent()
	b.Printf("NAME %q\n", "world")
	b.Outdent()
	b.Printf("END\n")

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package buffer

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/mapfilefs/dllist"
)

// IndentSpaces is the number of spaces per indentation level.
const IndentSpaces = 2

// Buffer is a growable text buffer. The zero value is an empty buffer ready
// to use.
type Buffer struct {
	frags  dllist.List[string]
	size   int // total length of fragments in bytes
	indent int // indentation level
}

// Printf formats according to a format specifier and appends the result to
// the buffer, prefixed by the current indentation. It returns the number of
// bytes appended, including the indentation.
func (b *Buffer) Printf(format string, args ...interface{}) int {
	n := 0
	if b.indent > 0 {
		n = b.push(strings.Repeat(" ", b.indent*IndentSpaces))
	}
	return n + b.push(fmt.Sprintf(format, args...))
}

// PrintfNoIndent is like Printf, but ignores the indentation.
func (b *Buffer) PrintfNoIndent(format string, args ...interface{}) int {
	return b.push(fmt.Sprintf(format, args...))
}

// Write appends p to the buffer, making Buffer an io.Writer.
// Indentation is not applied.
func (b *Buffer) Write(p []byte) (int, error) {
	return b.push(string(p)), nil
}

func (b *Buffer) push(s string) int {
	if len(s) == 0 {
		return 0
	}
	if _, err := b.frags.Append(s); err != nil {
		return 0
	}
	b.size += len(s)
	return len(s)
}

// Indent increases the indentation level by one.
func (b *Buffer) Indent() {
	b.indent++
}

// Outdent decreases the indentation level by one. The level does not drop
// below 0.
func (b *Buffer) Outdent() {
	if b.indent > 0 {
		b.indent--
	}
}

// Level returns the current indentation level.
func (b *Buffer) Level() int {
	return b.indent
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.size
}

// String returns the contents of the buffer.
func (b *Buffer) String() string {
	if b == nil || b.size == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(b.size)
	for frag := range b.frags.All() {
		sb.WriteString(frag)
	}
	return sb.String()
}

// WriteTo writes the contents of the buffer to w, implementing io.WriterTo.
// The buffer is not modified.
func (b *Buffer) WriteTo(w io.Writer) (n int64, err error) {
	err = b.frags.Iterate(func(_ *dllist.Node[string], frag string) error {
		m, err := io.WriteString(w, frag)
		n += int64(m)
		return err
	})
	return
}

// Reset empties the buffer and resets the indentation level.
func (b *Buffer) Reset() {
	b.frags.DeleteAll(nil)
	b.size, b.indent = 0, 0
}

// Append moves the contents of other to the end of b. other is empty
// afterwards, but keeps its indentation level.
func (b *Buffer) Append(other *Buffer) {
	if other == nil || other == b {
		return
	}
	b.size += other.size
	other.size = 0
	b.frags.AppendList(&other.frags)
}

// Clone returns a copy of b, including its indentation level.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{indent: b.indent, size: b.size}
	if _, err := c.frags.AppendListCopy(&b.frags, nil); err != nil {
		// zero-value lists do not fail to allocate
		panic(err)
	}
	return c
}
