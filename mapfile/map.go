package mapfile

import (
	"errors"
	"iter"
	"strings"

	"github.com/npillmayer/mapfilefs/bstree"
	"github.com/npillmayer/mapfilefs/dllist"
)

// ErrInvalidMap is returned for maps which cannot be serialized.
var ErrInvalidMap = errors.New("mapfile: invalid map")

// Status values for maps and layers.
const (
	StatusOn      = "ON"
	StatusOff     = "OFF"
	StatusDefault = "DEFAULT"
)

// Extent is a bounding box in map units: minx, miny, maxx, maxy.
type Extent [4]float64

// Size is the size of an output image in pixels: width, height.
type Size [2]int

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

// KeyValue is a generic setting.
type KeyValue struct {
	Key, Value string
}

func compareKeys(a, b KeyValue) int {
	return strings.Compare(a.Key, b.Key)
}

// Map is the top level object of a map file.
type Map struct {
	Name       string
	Status     string
	Size       Size
	Extent     Extent
	Units      string
	ShapePath  string
	ImageType  string
	ImageColor *Color
	FontSet    string
	SymbolSet  string
	Debug      int

	config *bstree.Tree[KeyValue]
	layers dllist.List[*Layer]
}

// New creates a map with a given name.
func New(name string) *Map {
	config, err := bstree.New(bstree.Config[KeyValue]{Compare: compareKeys})
	if err != nil {
		panic(err) // cannot happen: comparator is set
	}
	return &Map{Name: name, config: config}
}

// SetConfig sets a CONFIG option, replacing a previous value for key.
func (m *Map) SetConfig(key, value string) error {
	m.ensureConfig()
	if node := m.config.Find(KeyValue{Key: key}); node != nil {
		m.config.Delete(node)
	}
	_, err := m.config.Insert(KeyValue{Key: key, Value: value})
	return err
}

// Config returns the CONFIG option for key.
func (m *Map) Config(key string) (string, bool) {
	if m.config == nil {
		return "", false
	}
	if node := m.config.Find(KeyValue{Key: key}); node != nil {
		return node.Payload().Value, true
	}
	return "", false
}

// UnsetConfig removes a CONFIG option.
func (m *Map) UnsetConfig(key string) bool {
	if m.config == nil {
		return false
	}
	if node := m.config.Find(KeyValue{Key: key}); node != nil {
		m.config.Delete(node)
		return true
	}
	return false
}

// ConfigEntries iterates over all CONFIG options in ascending key order.
func (m *Map) ConfigEntries() iter.Seq[KeyValue] {
	m.ensureConfig()
	return m.config.Ascend()
}

func (m *Map) ensureConfig() {
	if m.config == nil {
		m.config, _ = bstree.New(bstree.Config[KeyValue]{Compare: compareKeys})
	}
}

// AddLayer appends a layer to the map.
func (m *Map) AddLayer(l *Layer) error {
	if l == nil {
		return nil
	}
	_, err := m.layers.Append(l)
	return err
}

// Layer returns the first layer with a given name.
func (m *Map) Layer(name string) *Layer {
	for l := range m.layers.All() {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// RemoveLayer removes the first layer with a given name.
func (m *Map) RemoveLayer(name string) bool {
	for n := m.layers.Head(); n != nil; n = n.Next() {
		if n.Payload().Name == name {
			m.layers.Delete(n)
			return true
		}
	}
	return false
}

// Layers iterates over the layers of m in drawing order.
func (m *Map) Layers() iter.Seq[*Layer] {
	return m.layers.All()
}

// LayerCount returns the number of layers.
func (m *Map) LayerCount() int {
	return m.layers.Len()
}

// SortLayers orders the layers by name. Layers with equal names keep their
// relative order.
func (m *Map) SortLayers() {
	m.layers.Sort(func(a, b *Layer) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// Layer is a data layer of a map.
type Layer struct {
	Name   string
	Type   string // POINT, LINE, POLYGON, RASTER, …
	Status string
	Data   string
	Extra  []KeyValue // additional settings, written verbatim
}

// Set adds an additional setting to a layer.
func (l *Layer) Set(key, value string) {
	l.Extra = append(l.Extra, KeyValue{Key: key, Value: value})
}
