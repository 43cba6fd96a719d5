package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultDir returns the directory searched for YAML files when --config is
// not given.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "sift")
}

// FindFiles lists the YAML files in dir. A missing dir yields no files.
func FindFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return sortedYAML(files), nil
}

func LoadFromFiles(files []string) (Config, error) {
	return LoadDefaultsAndFiles(nil, files)
}

// LoadDefaultsAndFiles parses defaultsYAML and overlays each YAML file in
// lexical order.
func LoadDefaultsAndFiles(defaultsYAML []byte, files []string) (Config, error) {
	merged, err := parse(defaultsYAML)
	if err != nil {
		return Config{}, fmt.Errorf("defaults: %w", err)
	}
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Config{}, err
		}
		part, err := parse(b)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", f, err)
		}
		merged = mergeConfig(merged, part)
	}
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}

func parse(b []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return c, nil
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func mergeConfig(base, overlay Config) Config {
	out := base
	if overlay.IgnoreCase != nil {
		v := *overlay.IgnoreCase
		out.IgnoreCase = &v
	}
	if overlay.Color != "" {
		out.Color = overlay.Color
	}
	if overlay.RegexFlag != "" {
		out.RegexFlag = overlay.RegexFlag
	}
	if overlay.RegexTimeout != "" {
		out.RegexTimeout = overlay.RegexTimeout
	}
	if overlay.LogFile != "" {
		out.LogFile = overlay.LogFile
	}
	return out
}
