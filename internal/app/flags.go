package app

import (
	"flag"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Preset string
	Scale  int
	TPS    int
	Seed   int64
	Layer  int
	Set    string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "tower", Scale: 12, TPS: 10, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "preset to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for preset reset")
	fs.IntVar(&c.Layer, "layer", c.Layer, "initial layer to show")
	fs.StringVar(&c.Set, "set", c.Set, "comma separated preset parameters, e.g. w=32,floors=8")
}

// Params splits Set into a preset configuration map. Malformed entries are
// skipped.
func (c *Config) Params() map[string]string {
	out := map[string]string{}
	for _, kv := range strings.Split(c.Set, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(kv), "=")
		if !ok || k == "" {
			continue
		}
		out[k] = v
	}
	return out
}
