// Copyright (c) 2026 Randfin. All rights reserved.

package media_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randfin/randfin/internal/content/media"
	"github.com/randfin/randfin/internal/platform/apperr"
	"github.com/randfin/randfin/internal/platform/dberr"
	"github.com/randfin/randfin/pkg/uuidv7"
)

type fakeRepository struct {
	files map[string]*media.File
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{files: map[string]*media.File{}}
}

func (f *fakeRepository) ListFiles(_ context.Context, _, _ int) ([]*media.File, int, error) {
	var out []*media.File
	for _, file := range f.files {
		clone := *file
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (f *fakeRepository) GetFileByName(_ context.Context, name string) (*media.File, error) {
	file, ok := f.files[name]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	clone := *file
	return &clone, nil
}

func (f *fakeRepository) CreateFile(_ context.Context, file *media.File) error {
	if _, ok := f.files[file.Name]; ok {
		return apperr.Conflict("A file with this name already exists")
	}
	file.ID = uuidv7.New()
	file.CreatedAt = time.Now()
	clone := *file
	f.files[file.Name] = &clone
	return nil
}

func (f *fakeRepository) DeleteFileByName(_ context.Context, name string) error {
	if _, ok := f.files[name]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.files, name)
	return nil
}

func newFixture(t *testing.T) (*media.Service, *fakeRepository, string) {
	t.Helper()

	dir := t.TempDir()
	blobs, err := media.NewFSBlobStore(dir)
	require.NoError(t, err)

	repo := newFakeRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return media.NewService(repo, blobs, logger), repo, dir
}

/*
TestUpload_SanitizesName slugs the filename, keeps the extension, and strips
client-supplied path components.
*/
func TestUpload_SanitizesName(t *testing.T) {
	service, _, dir := newFixture(t)

	file, err := service.Upload(context.Background(),
		"../../etc/Tax Chart (2026).PNG", "image/png", "admin",
		strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "tax-chart-2026.png", file.Name)
	assert.Equal(t, "/media/tax-chart-2026.png", file.URLPath)
	assert.Equal(t, int64(len("png-bytes")), file.SizeBytes)
	assert.Equal(t, "admin", file.UploadedBy)

	// Blob landed inside the root, nowhere else
	_, err = os.Stat(filepath.Join(dir, "tax-chart-2026.png"))
	require.NoError(t, err)
}

/*
TestUpload_RejectsContentType refuses anything outside the allow-list.
*/
func TestUpload_RejectsContentType(t *testing.T) {
	service, _, _ := newFixture(t)

	_, err := service.Upload(context.Background(),
		"payload.exe", "application/x-msdownload", "admin",
		strings.NewReader("mz"))
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestUpload_SizeLimit rejects a blob over the ceiling and removes the
partial write.
*/
func TestUpload_SizeLimit(t *testing.T) {
	service, _, dir := newFixture(t)

	oversized := io.LimitReader(neverEnding('x'), media.MaxUploadBytes+2)
	_, err := service.Upload(context.Background(), "huge.png", "image/png", "admin", oversized)
	require.Error(t, err)
	assert.Equal(t, "UNPROCESSABLE", apperr.As(err).Code)

	_, err = os.Stat(filepath.Join(dir, "huge.png"))
	assert.True(t, os.IsNotExist(err))
}

/*
TestUpload_NameCollision fails the second upload of the same name and keeps
the first blob intact.
*/
func TestUpload_NameCollision(t *testing.T) {
	service, _, dir := newFixture(t)

	_, err := service.Upload(context.Background(), "chart.png", "image/png", "admin",
		strings.NewReader("first"))
	require.NoError(t, err)

	_, err = service.Upload(context.Background(), "chart.png", "image/png", "admin",
		strings.NewReader("second"))
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)

	kept, err := os.ReadFile(filepath.Join(dir, "chart.png"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(kept))
}

/*
TestDeleteFile_MetadataFirst deletes the row and the blob; a repeat delete
is a clean not-found.
*/
func TestDeleteFile_MetadataFirst(t *testing.T) {
	service, repo, dir := newFixture(t)

	_, err := service.Upload(context.Background(), "chart.png", "image/png", "admin",
		strings.NewReader("bytes"))
	require.NoError(t, err)

	require.NoError(t, service.DeleteFile(context.Background(), "chart.png"))
	assert.Empty(t, repo.files)
	_, err = os.Stat(filepath.Join(dir, "chart.png"))
	assert.True(t, os.IsNotExist(err))

	err = service.DeleteFile(context.Background(), "chart.png")
	require.ErrorIs(t, err, dberr.ErrNotFound)
}

/*
TestFSBlobStore_RejectsTraversal refuses names that would escape the root.
*/
func TestFSBlobStore_RejectsTraversal(t *testing.T) {
	blobs, err := media.NewFSBlobStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"../escape.png", "a/b.png", ".", ".."} {
		_, err := blobs.Save(name, strings.NewReader("x"))
		require.Error(t, err, name)
	}
}

// neverEnding is an infinite reader of one byte, for size-limit tests.
type neverEnding byte

func (b neverEnding) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(b)
	}
	return len(p), nil
}
