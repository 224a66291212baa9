package cache

import "github.com/npillmayer/schuko"

// Defaults for cache configuration.
const (
	DefaultRebalanceAfter = 32
	DefaultEventBuffer    = 16
)

// Configuration keys read by ConfigFrom.
const (
	KeyMaxEntries  = "cache.maxentries"
	KeyRebalance   = "cache.rebalance"
	KeyEventBuffer = "cache.eventbuffer"
)

// Config configures a cache.
type Config struct {
	MaxEntries     int  // upper bound of cached entries, 0 for no limit
	RebalanceAfter int  // re-balance the index after this many evictions, 0 for never
	EventBuffer    uint // capacity of subscriber channels
}

// DefaultConfig returns a configuration for an unbounded cache.
func DefaultConfig() Config {
	return Config{
		RebalanceAfter: DefaultRebalanceAfter,
		EventBuffer:    DefaultEventBuffer,
	}
}

// ConfigFrom reads a cache configuration from an application configuration.
// Keys not set in conf keep their default values.
func ConfigFrom(conf schuko.Configuration) Config {
	cfg := DefaultConfig()
	if conf == nil {
		return cfg
	}
	if conf.IsSet(KeyMaxEntries) {
		cfg.MaxEntries = max(0, conf.GetInt(KeyMaxEntries))
	}
	if conf.IsSet(KeyRebalance) {
		cfg.RebalanceAfter = max(0, conf.GetInt(KeyRebalance))
	}
	if conf.IsSet(KeyEventBuffer) {
		cfg.EventBuffer = uint(max(0, conf.GetInt(KeyEventBuffer)))
	}
	return cfg
}
