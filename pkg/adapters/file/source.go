package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/aretw0/surveyshell/pkg/domain"
)

// Source implements ports.SourceLister over a filesystem.
// Only files with the ".json" extension are listed; any file can be loaded.
type Source struct {
	fsys fs.FS
}

// New creates a Source rooted at fsys (for example an embed.FS).
func New(fsys fs.FS) *Source {
	return &Source{fsys: fsys}
}

// NewDir creates a Source rooted at a directory on disk.
// If dir is empty, it defaults to "static".
func NewDir(dir string) *Source {
	if dir == "" {
		dir = "static"
	}
	return New(os.DirFS(dir))
}

// FS returns the underlying filesystem, so the same root can be served over HTTP.
func (s *Source) FS() fs.FS {
	return s.fsys
}

// Load reads the named document.
func (s *Source) Load(ctx context.Context, name string) ([]byte, error) {
	clean, err := domain.CleanSourceName(name)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(s.fsys, clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, clean)
		}
		return nil, fmt.Errorf("failed to read source %s: %w", clean, err)
	}
	return data, nil
}

// List walks the filesystem and returns every JSON document, sorted.
func (s *Source) List(ctx context.Context) ([]string, error) {
	var names []string
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !d.IsDir() && path.Ext(p) == ".json" {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	sort.Strings(names)
	return names, nil
}
