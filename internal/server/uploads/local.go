package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/storyku/internal/common"
	"github.com/dmitrijs2005/storyku/internal/filex"
)

// LocalStore keeps uploads in one flat directory.
type LocalStore struct {
	dir   string
	namer *Namer
}

// NewLocalStore creates dir if needed.
func NewLocalStore(dir string, namer *Namer) (*LocalStore, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &LocalStore{dir: abs, namer: namer}, nil
}

func (s *LocalStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	name := s.namer.Next(originalName)

	path, err := filex.SafeJoin(s.dir, name)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload: %w", err)
	}

	return name, nil
}

func (s *LocalStore) Locate(ctx context.Context, name string) (Location, error) {
	path, err := filex.SafeJoin(s.dir, name)
	if err != nil {
		return Location{}, common.ErrorNotFound
	}

	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Location{}, common.ErrorNotFound
		}
		return Location{}, err
	}
	if fi.IsDir() {
		return Location{}, common.ErrorNotFound
	}

	return Location{Path: path}, nil
}
