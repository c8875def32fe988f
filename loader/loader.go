// Package loader builds the nested mappings a confmap.Config is
// constructed from out of configuration files.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
)

// Unmarshal is any function that maps source bytes to a nested mapping.
type Unmarshal func(src []byte) (map[string]any, error)

// File is a single configuration source.
type File struct {
	Path      string
	Unmarshal Unmarshal
	Optional  bool
}

// Loader holds a set of file paths and the appropriate decoder for each,
// picked by extension. Load merges the decoded mappings in order, later
// files overriding earlier ones.
type Loader struct {
	decoders map[string]Unmarshal
	files    []File
}

// New returns a Loader with the YAML, JSON and dotenv decoders
// registered under their usual extensions.
func New() *Loader {
	return &Loader{
		decoders: map[string]Unmarshal{
			"yaml": YAML,
			"yml":  YAML,
			"json": JSON,
			"env":  Dotenv,
		},
	}
}

// RegisterDecoder registers a decoder for the given format. The format
// is an extension, with or without the leading dot.
func (l *Loader) RegisterDecoder(format string, decoder Unmarshal) error {
	if format == "" {
		return errors.New("format cannot be empty")
	}

	if l.decoders == nil {
		l.decoders = make(map[string]Unmarshal)
	}

	format = strings.TrimPrefix(format, ".")

	if _, ok := l.decoders[format]; ok {
		return fmt.Errorf("decoder for format %q already registered", format)
	}

	l.decoders[format] = decoder

	return nil
}

// AddFile appends a new file to the list of sources. Optional files that
// do not exist are skipped at Load time.
func (l *Loader) AddFile(path string, optional bool) error {
	if path == "" {
		return nil
	}

	fileExt := strings.TrimPrefix(filepath.Ext(path), ".")

	decoder, ok := l.decoders[fileExt]
	if !ok {
		return fmt.Errorf("no decoder registered for format %q", fileExt)
	}

	l.files = append(l.files, File{path, decoder, optional})

	return nil
}

// AddFiles appends multiple files to the list of sources.
func (l *Loader) AddFiles(paths []string, optional bool) error {
	for _, path := range paths {
		if err := l.AddFile(path, optional); err != nil {
			return fmt.Errorf("failed to add file %q: %w", path, err)
		}
	}
	return nil
}

// Load reads and decodes every added file in order and deep-merges the
// results, later files overriding earlier ones.
func (l *Loader) Load() (map[string]any, error) {
	merged := make(map[string]any)

	for _, f := range l.files {
		src, err := os.ReadFile(f.Path)
		if err != nil {
			if f.Optional && os.IsNotExist(err) {
				continue
			}
			return nil, err
		}

		values, err := f.Unmarshal(src)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %q: %w", f.Path, err)
		}

		if err := mergo.Merge(&merged, values, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge %q: %w", f.Path, err)
		}
	}

	return merged, nil
}
