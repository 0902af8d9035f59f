// Copyright (c) 2026 Randfin. All rights reserved.

package media

import (
	"context"
	"io"
)

type Repository interface {
	ListFiles(context context.Context, limit, offset int) ([]*File, int, error)
	GetFileByName(context context.Context, name string) (*File, error)
	CreateFile(context context.Context, f *File) error
	// DeleteFileByName removes the metadata row. Returns dberr.ErrNotFound
	// when no row matches, which makes a repeated delete a 404.
	DeleteFileByName(context context.Context, name string) error
}

// BlobStore persists the actual file bytes.
type BlobStore interface {
	// Save writes the blob and returns its size.
	Save(name string, reader io.Reader) (int64, error)
	// Remove deletes the blob. Removing a missing blob is not an error;
	// the metadata row is the source of truth.
	Remove(name string) error
}
