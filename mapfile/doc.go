/*
Package mapfile generates map configuration files in the MAP … END block
format of map rendering servers.

A Map is built up in memory and then serialized into a buffer.Buffer:

	m := mapfile.New("world")
	m.Extent = mapfile.Extent{-180, -90, 180, 90}
	m.SetConfig("MS_ERRORFILE", "stderr")
	m.AddLayer(&mapfile.Layer{Name: "countries", Type: "POLYGON", Data: "countries.shp"})
	var buf buffer.Buffer
	err := mapfile.Write(&buf, m)

Optional settings which have not been set are omitted from the output.
CONFIG entries are written in ascending key order, layers in the order they
have been added (or sorted with SortLayers).

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package mapfile

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'mapfilefs'
func tracer() tracing.Trace {
	return tracing.Select("mapfilefs")
}
