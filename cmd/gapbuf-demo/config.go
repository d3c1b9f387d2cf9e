package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// demoConfig is the TOML document accepted by -config.
type demoConfig struct {
	Text       string `toml:"text"`
	Capacity   int    `toml:"capacity"`
	GapSize    int    `toml:"gap_size"`
	Encoding   string `toml:"encoding"`
	ShowStatus *bool  `toml:"show_status"`
	ReadOnly   bool   `toml:"read_only"`
}

const defaultText = "Hello from gapbuf.\n\nType to edit.\nCtrl+S saves when a file was given.\nCtrl+C quits."

func defaultConfig() demoConfig {
	return demoConfig{Text: defaultText}
}

// loadConfig reads path into the defaults. An empty path returns the
// defaults unchanged; a missing file is an error.
func loadConfig(path string) (demoConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parseConfig(path, data)
}

func parseConfig(source string, data []byte) (demoConfig, error) {
	cfg := defaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", source, err)
	}
	if cfg.Capacity < 0 || cfg.GapSize < 0 {
		return cfg, fmt.Errorf("config %s: capacity and gap_size must not be negative", source)
	}
	if _, err := cfg.encoding(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, nil
}

func (c demoConfig) showStatus() bool {
	return c.ShowStatus == nil || *c.ShowStatus
}

// encoding resolves the WHATWG label. An empty label means UTF-8.
func (c demoConfig) encoding() (encoding.Encoding, error) {
	if c.Encoding == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(c.Encoding)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", c.Encoding, err)
	}
	return enc, nil
}

// initialText returns the configured text in the buffer encoding. TOML
// strings are UTF-8, so non-UTF-8 encodings need the text re-encoded.
func (c demoConfig) initialText(enc encoding.Encoding) (string, error) {
	if enc == unicode.UTF8 {
		return c.Text, nil
	}
	s, err := enc.NewEncoder().String(c.Text)
	if err != nil {
		return "", fmt.Errorf("text not representable in %s: %w", c.Encoding, err)
	}
	return s, nil
}
