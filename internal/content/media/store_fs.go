// Copyright (c) 2026 Randfin. All rights reserved.

package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/randfin/randfin/internal/platform/apperr"
)

// FSBlobStore implements [BlobStore] on a local directory.
//
// Names are sanitized by the service before they reach this layer, but the
// store still refuses anything that would escape its root.
type FSBlobStore struct {
	root string
}

func NewFSBlobStore(root string) (*FSBlobStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("media: failed to create blob directory %s: %w", root, err)
	}
	return &FSBlobStore{root: root}, nil
}

func (store *FSBlobStore) Save(name string, reader io.Reader) (int64, error) {
	path, err := store.resolve(name)
	if err != nil {
		return 0, err
	}

	// O_EXCL so the blob write fails before the metadata insert would.
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return 0, apperr.Conflict("A file with this name already exists")
		}
		return 0, fmt.Errorf("media: failed to create blob %s: %w", name, err)
	}
	defer file.Close()

	size, err := io.Copy(file, reader)
	if err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("media: failed to write blob %s: %w", name, err)
	}

	return size, nil
}

func (store *FSBlobStore) Remove(name string) error {
	path, err := store.resolve(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("media: failed to remove blob %s: %w", name, err)
	}
	return nil
}

// resolve joins the name onto the root and rejects traversal.
func (store *FSBlobStore) resolve(name string) (string, error) {
	cleaned := filepath.Base(filepath.Clean(name))
	if cleaned != name || cleaned == "." || cleaned == ".." {
		return "", apperr.Unprocessable("Invalid file name")
	}
	return filepath.Join(store.root, cleaned), nil
}
