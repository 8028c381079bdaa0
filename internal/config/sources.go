package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"extframe/pkg/spi"
)

// EmbeddedSource reads resource records from an embed.FS rooted at prefix,
// the Resource Reader's "compiled into the binary" location (§4.1).
type EmbeddedSource struct {
	fsys   fs.ReadFileFS
	prefix string
}

// NewEmbeddedSource wraps fsys, looking up resourceName under prefix.
func NewEmbeddedSource(fsys fs.ReadFileFS, prefix string) *EmbeddedSource {
	return &EmbeddedSource{fsys: fsys, prefix: prefix}
}

func (s *EmbeddedSource) Name() string { return "embedded" }

func (s *EmbeddedSource) Read(resourceName string) ([]byte, bool, error) {
	data, err := s.fsys.ReadFile(filepath.Join(s.prefix, resourceName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// DirectorySource reads resource records from resourceName-named files
// directly under a directory on the OS filesystem — the shared and user
// locations (§4.1).
type DirectorySource struct {
	label string
	dir   string
}

// NewDirectorySource wraps dir, labeled for diagnostics as label.
func NewDirectorySource(label, dir string) *DirectorySource {
	return &DirectorySource{label: label, dir: dir}
}

func (s *DirectorySource) Name() string { return s.label + ":" + s.dir }

func (s *DirectorySource) Read(resourceName string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, resourceName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

var _ spi.Source = (*EmbeddedSource)(nil)
var _ spi.Source = (*DirectorySource)(nil)
