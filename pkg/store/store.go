package store

import (
	"io"
	"os"
	"path/filepath"

	"github.com/exoplaneteu/exoplaneteu/pkg/errors"
)

const (
	// DirName is the cache directory name under the user's home directory.
	DirName = ".pyexoplaneteu"

	// ArtifactName is the file name of the cached catalog.
	ArtifactName = "exoplanetEU.csv"
)

// Store is the resolved cache directory holding the catalog artifact.
type Store struct {
	dir string
}

// DefaultDir returns <home>/.pyexoplaneteu without creating it.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "resolve home directory")
	}
	return filepath.Join(home, DirName), nil
}

// New resolves the cache directory and creates it, with any missing
// parents, if it does not exist. An empty dir selects [DefaultDir].
// Calling New repeatedly for the same directory is safe.
func New(dir string) (*Store, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create cache directory %s", dir)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the cache directory path.
func (s *Store) Dir() string { return s.dir }

// ArtifactPath returns the path of the cached catalog file.
func (s *Store) ArtifactPath() string {
	return filepath.Join(s.dir, ArtifactName)
}

// Stat reports whether the artifact exists and returns its metadata.
// A missing artifact yields (nil, false, nil); any other stat failure is
// returned as an I/O error.
func (s *Store) Stat() (os.FileInfo, bool, error) {
	info, err := os.Stat(s.ArtifactPath())
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeIO, err, "stat %s", s.ArtifactPath())
	}
	return info, true, nil
}

// Open opens the artifact for reading.
func (s *Store) Open() (*os.File, error) {
	f, err := os.Open(s.ArtifactPath())
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeArtifactNotFound, err, "no cached catalog at %s", s.ArtifactPath())
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", s.ArtifactPath())
	}
	return f, nil
}

// WriteFile copies r into the artifact slot and returns the number of
// bytes written. The data goes to a temporary file in the cache directory
// first and is renamed over the artifact once complete.
func (s *Store) WriteFile(r io.Reader) (int64, error) {
	return WriteFile(s.ArtifactPath(), r)
}

// Remove deletes the artifact. The cache directory itself is kept.
// A missing artifact is not an error.
func (s *Store) Remove() error {
	err := os.Remove(s.ArtifactPath())
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return errors.Wrap(errors.ErrCodeIO, err, "remove %s", s.ArtifactPath())
}

// WriteFile replaces path with the contents of r via a sibling temporary
// file and a rename.
func WriteFile(path string, r io.Reader) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "create temporary file for %s", path)
	}
	tmpPath := tmp.Name()

	n, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return n, errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return n, errors.Wrap(errors.ErrCodeIO, err, "chmod %s", tmpPath)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return n, errors.Wrap(errors.ErrCodeIO, err, "rename %s", tmpPath)
	}
	return n, nil
}
