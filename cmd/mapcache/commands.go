package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/npillmayer/mapfilefs/buffer"
	"github.com/npillmayer/mapfilefs/cache"
	"github.com/npillmayer/mapfilefs/mapfile"
	"github.com/npillmayer/mapfilefs/mapfs"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// tracer writes to trace with key 'mapfilefs'
func tracer() tracing.Trace {
	return tracing.Select("mapfilefs")
}

type options struct {
	ids    []int
	expire []int
	evict  bool
	color  string // auto, always, never
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "mapcache",
		Short:        "Populate a map file cache and inspect it",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupTracing(configuration(cmd))
		},
	}
	pf := root.PersistentFlags()
	pf.IntSliceVar(&opts.ids, "id", nil, "map IDs to generate (repeatable)")
	pf.IntSliceVar(&opts.expire, "expire", nil, "map IDs to expire after generation")
	pf.BoolVar(&opts.evict, "evict", false, "evict expired entries")
	pf.Int("max-entries", 0, "maximum number of cache entries (0 = unlimited)")
	pf.Int("rebalance", cache.DefaultRebalanceAfter, "re-balance the index after this many evictions")
	pf.Int("event-buffer", cache.DefaultEventBuffer, "capacity of event subscriber channels")
	pf.String("trace", "Error", "trace level (Debug, Info, Error)")
	pf.String("trace-to", "stderr", "trace destination (stderr, stdout, file:///path)")
	pf.StringVar(&opts.color, "color", "auto", "colored output (auto, always, never)")

	root.AddCommand(
		&cobra.Command{
			Use:   "dump",
			Short: "Print index, listing and generated map files",
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := populate(cmd, opts)
				if err != nil {
					return err
				}
				defer c.Close()
				return dump(cmd.OutOrStdout(), c, paletteFor(cmd.OutOrStdout(), opts.color))
			},
		},
		&cobra.Command{
			Use:   "ls",
			Short: "List the cache as a file system",
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := populate(cmd, opts)
				if err != nil {
					return err
				}
				defer c.Close()
				return list(cmd.OutOrStdout(), mapfs.New(c))
			},
		},
		&cobra.Command{
			Use:   "dot",
			Short: "Write the cache index in Graphviz DOT format",
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := populate(cmd, opts)
				if err != nil {
					return err
				}
				defer c.Close()
				return c.Dot(cmd.OutOrStdout())
			},
		},
	)
	return root
}

// configuration maps the application configuration onto the flags of cmd.
func configuration(cmd *cobra.Command) flagConfig {
	return flagConfig{
		flags: cmd.Flags(),
		keys: map[string]string{
			cache.KeyMaxEntries:   "max-entries",
			cache.KeyRebalance:    "rebalance",
			cache.KeyEventBuffer:  "event-buffer",
			"trace.root":          "trace",
			"trace.mapfilefs":     "trace",
			"tracing.destination": "trace-to",
		},
		fixed: map[string]string{
			"tracing.adapter": "go",
		},
	}
}

func setupTracing(conf flagConfig) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// populate creates a cache and fills it as requested by opts.
func populate(cmd *cobra.Command, opts *options) (*cache.Cache, error) {
	cfg := cache.ConfigFrom(configuration(cmd))
	c, err := cache.New(cfg, demoGenerator)
	if err != nil {
		return nil, err
	}
	var errs []error
	for _, id := range opts.ids {
		if _, err := c.Get(id); err != nil {
			errs = append(errs, err)
		}
	}
	for _, id := range opts.expire {
		if err := c.Expire(id); err != nil {
			errs = append(errs, err)
		}
	}
	if opts.evict {
		n := c.Evict()
		tracer().Infof("%d entries evicted", n)
	}
	if err := errors.Join(errs...); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// demoGenerator produces a small map file with a single layer.
func demoGenerator(id int, buf *buffer.Buffer) error {
	if id < 0 {
		return fmt.Errorf("map IDs must not be negative: %d", id)
	}
	m := mapfile.New(fmt.Sprintf("map%d", id))
	m.Status = mapfile.StatusOn
	m.Size = mapfile.Size{800, 600}
	m.Extent = mapfile.Extent{-180, -90, 180, 90}
	m.Units = "DD"
	m.ImageType = "png"
	m.SetConfig("MS_ERRORFILE", "stderr")
	m.AddLayer(&mapfile.Layer{
		Name:   fmt.Sprintf("layer%d", id),
		Type:   "POLYGON",
		Status: mapfile.StatusDefault,
		Data:   fmt.Sprintf("data/%d.shp", id),
	})
	return mapfile.Write(buf, m)
}

func list(w io.Writer, fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s %6d %s\n", info.Mode(), info.Size(), path)
		return err
	})
}
