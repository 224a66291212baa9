/*
Package mapfs presents the contents of a map file cache as a read-only file
system.

The file system has a single directory, its root. For every entry of the
cache there is a file "<id>.map" in the root directory. Reading a file
returns the cached map file, which is generated on demand if the entry has
expired. Opening a file never adds a map to the cache. FS implements fs.FS,
fs.ReadDirFS, fs.ReadFileFS and fs.StatFS, so it works with fs.WalkDir,
http.FS and friends.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package mapfs

import (
	"errors"
	"io"
	"io/fs"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/mapfilefs/cache"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mapfilefs'
func tracer() tracing.Trace {
	return tracing.Select("mapfilefs")
}

// Suffix is the file name extension of map files.
const Suffix = ".map"

// File modes of the file system.
const (
	FileMode = fs.FileMode(0444)
	DirMode  = fs.ModeDir | 0555
)

// FS is a read-only file system backed by a cache.
type FS struct {
	cache   *cache.Cache
	modTime time.Time
}

var (
	_ fs.ReadDirFS  = (*FS)(nil)
	_ fs.ReadFileFS = (*FS)(nil)
	_ fs.StatFS     = (*FS)(nil)
)

// New creates a file system for a cache.
func New(c *cache.Cache) *FS {
	return &FS{cache: c, modTime: time.Now().Truncate(time.Second)}
}

// FileName returns the name of the file for map id.
func FileName(id int) string {
	return strconv.Itoa(id) + Suffix
}

// parseName returns the map ID of a file name. Only names produced by
// FileName are accepted.
func parseName(name string) (int, bool) {
	digits, ok := strings.CutSuffix(name, Suffix)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(digits)
	if err != nil || FileName(id) != name {
		return 0, false
	}
	return id, true
}

// Open opens the named file.
func (fsys *FS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if name == "." {
		entries, err := fsys.entries("open")
		if err != nil {
			return nil, err
		}
		return &dir{info: fsys.dirInfo(), entries: entries}, nil
	}
	text, info, err := fsys.load("open", name)
	if err != nil {
		return nil, err
	}
	return &file{Reader: strings.NewReader(text), info: info}, nil
}

// ReadFile returns the contents of the named file.
func (fsys *FS) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrInvalid}
	}
	if name == "." {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: errors.New("is a directory")}
	}
	text, _, err := fsys.load("readfile", name)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// Stat returns a FileInfo describing the named file.
func (fsys *FS) Stat(name string) (fs.FileInfo, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrInvalid}
	}
	if name == "." {
		return fsys.dirInfo(), nil
	}
	_, info, err := fsys.load("stat", name)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// ReadDir reads the named directory, returning its entries sorted by file
// name.
func (fsys *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	if name != "." {
		if _, ok := parseName(name); ok {
			return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
		}
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}
	return fsys.entries("readdir")
}

// load fetches the map file for a file name from the cache. Only maps known
// to the cache are files of fsys; load never adds maps to the cache.
func (fsys *FS) load(op, name string) (string, fileInfo, error) {
	id, ok := parseName(name)
	if !ok {
		return "", fileInfo{}, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	text, err := fsys.cache.GetCached(id)
	if errors.Is(err, cache.ErrUnknownEntry) || errors.Is(err, cache.ErrClosed) {
		// a closed cache has no entries
		return "", fileInfo{}, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	if err != nil {
		tracer().Errorf("mapfs: %s %s: %v", op, name, err)
		return "", fileInfo{}, &fs.PathError{Op: op, Path: name, Err: err}
	}
	return text, fsys.fileInfo(name, len(text)), nil
}

func (fsys *FS) entries(op string) ([]fs.DirEntry, error) {
	var entries []fs.DirEntry
	for _, id := range fsys.cache.IDs() {
		name := FileName(id)
		_, info, err := fsys.load(op, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) { // evicted meanwhile
				continue
			}
			return nil, err
		}
		entries = append(entries, dirEntry{info})
	}
	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	tracer().Debugf("mapfs: directory has %d entries", len(entries))
	return entries, nil
}

func (fsys *FS) fileInfo(name string, size int) fileInfo {
	return fileInfo{name: name, size: int64(size), mode: FileMode, modTime: fsys.modTime}
}

func (fsys *FS) dirInfo() fileInfo {
	return fileInfo{name: ".", mode: DirMode, modTime: fsys.modTime}
}

// --- Files and directories -------------------------------------------------

type fileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (fi fileInfo) Name() string       { return fi.name }
func (fi fileInfo) Size() int64        { return fi.size }
func (fi fileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi fileInfo) ModTime() time.Time { return fi.modTime }
func (fi fileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi fileInfo) Sys() any           { return nil }

type dirEntry struct {
	info fileInfo
}

func (de dirEntry) Name() string               { return de.info.name }
func (de dirEntry) IsDir() bool                { return de.info.IsDir() }
func (de dirEntry) Type() fs.FileMode          { return de.info.mode.Type() }
func (de dirEntry) Info() (fs.FileInfo, error) { return de.info, nil }
func (de dirEntry) String() string             { return fs.FormatDirEntry(de) }

// file is an open map file. The content is a snapshot taken at Open.
type file struct {
	*strings.Reader
	info fileInfo
}

func (f *file) Stat() (fs.FileInfo, error) { return f.info, nil }
func (f *file) Close() error               { return nil }

// dir is the open root directory.
type dir struct {
	info    fileInfo
	entries []fs.DirEntry
	offset  int
}

func (d *dir) Stat() (fs.FileInfo, error) { return d.info, nil }
func (d *dir) Close() error               { return nil }

func (d *dir) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.info.name, Err: errors.New("is a directory")}
}

func (d *dir) ReadDir(n int) ([]fs.DirEntry, error) {
	rest := d.entries[d.offset:]
	if n <= 0 {
		d.offset = len(d.entries)
		return slices.Clone(rest), nil
	}
	if len(rest) == 0 {
		return nil, io.EOF
	}
	n = min(n, len(rest))
	d.offset += n
	return slices.Clone(rest[:n]), nil
}
