package mapfile

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/mapfilefs/buffer"
)

// Write serializes m into buf. Settings not set are omitted. A map must have a
// name and each of its layers must have a name, otherwise Write returns an
// error wrapping ErrInvalidMap and buf is left untouched.
func Write(buf *buffer.Buffer, m *Map) error {
	if err := validate(m); err != nil {
		tracer().Errorf("%v", err)
		return err
	}
	var b buffer.Buffer
	for range buf.Level() {
		b.Indent()
	}
	b.Printf("MAP\n")
	b.Indent()
	b.Printf("NAME %s\n", quote(m.Name))
	keyword(&b, "STATUS", m.Status)
	if m.Size != (Size{}) {
		b.Printf("SIZE %d %d\n", m.Size[0], m.Size[1])
	}
	if m.Extent != (Extent{}) {
		b.Printf("EXTENT %s %s %s %s\n", num(m.Extent[0]), num(m.Extent[1]),
			num(m.Extent[2]), num(m.Extent[3]))
	}
	keyword(&b, "UNITS", m.Units)
	quoted(&b, "SHAPEPATH", m.ShapePath)
	keyword(&b, "IMAGETYPE", m.ImageType)
	if c := m.ImageColor; c != nil {
		b.Printf("IMAGECOLOR %d %d %d\n", c.R, c.G, c.B)
	}
	quoted(&b, "FONTSET", m.FontSet)
	quoted(&b, "SYMBOLSET", m.SymbolSet)
	if m.Debug > 0 {
		b.Printf("DEBUG %d\n", m.Debug)
	}
	if m.config != nil {
		for kv := range m.config.Ascend() {
			b.Printf("CONFIG %s %s\n", quote(kv.Key), quote(kv.Value))
		}
	}
	for l := range m.layers.All() {
		writeLayer(&b, l)
	}
	b.Outdent()
	b.Printf("END\n")
	tracer().Debugf("mapfile: map %q with %d layers written, %d bytes", m.Name, m.LayerCount(), b.Len())
	buf.Append(&b)
	return nil
}

func writeLayer(b *buffer.Buffer, l *Layer) {
	b.Printf("LAYER\n")
	b.Indent()
	b.Printf("NAME %s\n", quote(l.Name))
	keyword(b, "TYPE", l.Type)
	keyword(b, "STATUS", l.Status)
	quoted(b, "DATA", l.Data)
	for _, kv := range l.Extra {
		b.Printf("%s %s\n", kv.Key, kv.Value)
	}
	b.Outdent()
	b.Printf("END\n")
}

func validate(m *Map) error {
	if m == nil {
		return fmt.Errorf("%w: map is nil", ErrInvalidMap)
	}
	if m.Name == "" {
		return fmt.Errorf("%w: map has no name", ErrInvalidMap)
	}
	i := 0
	for l := range m.layers.All() {
		if l.Name == "" {
			return fmt.Errorf("%w: layer #%d of map %q has no name", ErrInvalidMap, i, m.Name)
		}
		i++
	}
	return nil
}

func keyword(b *buffer.Buffer, key, value string) {
	if value != "" {
		b.Printf("%s %s\n", key, value)
	}
}

func quoted(b *buffer.Buffer, key, value string) {
	if value != "" {
		b.Printf("%s %s\n", key, quote(value))
	}
}

func quote(s string) string {
	return strconv.Quote(s)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
