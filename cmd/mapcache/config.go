package main

import (
	"strconv"

	"github.com/npillmayer/schuko"
	"github.com/spf13/pflag"
)

// flagConfig presents command line flags as an application configuration.
// Configuration keys are mapped to flag names; fixed values are not
// settable from the command line.
type flagConfig struct {
	flags *pflag.FlagSet
	keys  map[string]string // configuration key → flag name
	fixed map[string]string
}

var _ schuko.Configuration = flagConfig{}

func (c flagConfig) flag(key string) *pflag.Flag {
	if name, ok := c.keys[key]; ok && c.flags != nil {
		return c.flags.Lookup(name)
	}
	return nil
}

func (c flagConfig) InitDefaults() {}

// IsSet is true for fixed values and for flags given on the command line.
func (c flagConfig) IsSet(key string) bool {
	if _, ok := c.fixed[key]; ok {
		return true
	}
	f := c.flag(key)
	return f != nil && f.Changed
}

func (c flagConfig) GetString(key string) string {
	if v, ok := c.fixed[key]; ok {
		return v
	}
	if f := c.flag(key); f != nil {
		return f.Value.String()
	}
	return ""
}

func (c flagConfig) GetInt(key string) int {
	n, _ := strconv.Atoi(c.GetString(key))
	return n
}

func (c flagConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c.GetString(key))
	return b
}

func (c flagConfig) IsInteractive() bool { return false }
