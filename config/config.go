// Package config loads combigen.toml, a file of named patterns and the
// compile defaults that apply to them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/combigen/pattern"
)

// FileName is the name Find looks for.
const FileName = "combigen.toml"

var (
	// ErrUnknownGenerator indicates Lookup was asked for an undeclared name.
	ErrUnknownGenerator = errors.New("config: unknown generator")

	// ErrNoPattern indicates a declared generator without a pattern.
	ErrNoPattern = errors.New("config: generator has no pattern")
)

// File is a parsed combigen.toml.
type File struct {
	Defaults   Defaults             `toml:"defaults"`
	Generators map[string]Generator `toml:"generators"`

	// Path is the absolute path the file was loaded from.
	Path string `toml:"-"`
}

// Defaults apply to every generator that does not override them.
type Defaults struct {
	RepeatLimit *int   `toml:"repeat_limit"`
	Universe    string `toml:"universe"`
	Seed        *int64 `toml:"seed"`
}

// Generator is one named pattern.
type Generator struct {
	Name        string `toml:"-"`
	Pattern     string `toml:"pattern"`
	Description string `toml:"description"`
	RepeatLimit *int   `toml:"repeat_limit"`
	Universe    string `toml:"universe"`
}

// Load parses the file at path. Unknown keys are an error so that typos
// do not silently fall back to defaults.
func Load(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	f.Path, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}
	if err := validLimit(f.Defaults.RepeatLimit); err != nil {
		return nil, fmt.Errorf("%s: defaults: %w", path, err)
	}
	for name, g := range f.Generators {
		if err := validLimit(g.RepeatLimit); err != nil {
			return nil, fmt.Errorf("%s: generators.%s: %w", path, name, err)
		}
		g.Name = name
		f.Generators[name] = g
	}
	return &f, nil
}

func validLimit(limit *int) error {
	if limit != nil && (*limit < 0 || *limit > pattern.MaxRepeatCount) {
		return fmt.Errorf("repeat_limit %d out of [0, %d]", *limit, pattern.MaxRepeatCount)
	}
	return nil
}

// Find walks up from startDir looking for combigen.toml and loads the first
// one found. It returns nil, nil when there is none.
func Find(startDir string) (*File, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// Lookup returns the named generator with defaults applied.
func (f *File) Lookup(name string) (Generator, error) {
	g, ok := f.Generators[name]
	if !ok {
		return Generator{}, fmt.Errorf("%q: %w", name, ErrUnknownGenerator)
	}
	if g.Pattern == "" {
		return Generator{}, fmt.Errorf("%q: %w", name, ErrNoPattern)
	}
	if g.RepeatLimit == nil {
		g.RepeatLimit = f.Defaults.RepeatLimit
	}
	if g.Universe == "" {
		g.Universe = f.Defaults.Universe
	}
	return g, nil
}

// Names lists the declared generators in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Generators))
	for name := range f.Generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options converts the generator's settings into compile options.
func (g Generator) Options() []pattern.Option {
	var opts []pattern.Option
	if g.RepeatLimit != nil {
		opts = append(opts, pattern.WithRepeatLimit(*g.RepeatLimit))
	}
	if g.Universe != "" {
		opts = append(opts, pattern.WithUniverse(g.Universe))
	}
	return opts
}
