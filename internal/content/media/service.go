// Copyright (c) 2026 Randfin. All rights reserved.

package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/randfin/randfin/internal/platform/apperr"
	"github.com/randfin/randfin/internal/platform/validate"
	slugpkg "github.com/randfin/randfin/pkg/slug"
)

type Service struct {
	repo   Repository
	blobs  BlobStore
	logger *slog.Logger
}

func NewService(repo Repository, blobs BlobStore, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		blobs:  blobs,
		logger: logger,
	}
}

func (service *Service) ListFiles(context context.Context, limit, offset int) ([]*File, int, error) {
	return service.repo.ListFiles(context, limit, offset)
}

// Upload stores the blob and its metadata row. The stored name is a
// sanitized version of the client filename; a collision surfaces as the
// repository's conflict error after the blob write is rolled back.
func (service *Service) Upload(context context.Context, filename, contentType, uploadedBy string, reader io.Reader) (*File, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, filename)
	validator.Custom(FieldFile, !allowedContentTypes[contentType], "Unsupported file type")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	name := sanitizeName(filename)
	if name == "" {
		return nil, apperr.Unprocessable("Filename contains no usable characters")
	}

	size, err := service.blobs.Save(name, io.LimitReader(reader, MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if size > MaxUploadBytes {
		_ = service.blobs.Remove(name)
		return nil, apperr.Unprocessable("File exceeds the 10MB upload limit")
	}

	file := &File{
		Name:        name,
		ContentType: contentType,
		SizeBytes:   size,
		URLPath:     "/media/" + name,
		UploadedBy:  uploadedBy,
	}

	if err := service.repo.CreateFile(context, file); err != nil {
		_ = service.blobs.Remove(name)
		return nil, err
	}

	service.logger.Info("media_uploaded",
		slog.String("name", name),
		slog.String("content_type", contentType),
		slog.Int64("size_bytes", size),
	)
	return file, nil
}

// DeleteFile removes the metadata row first, then the blob. A second delete
// finds no row and returns not-found before touching disk.
func (service *Service) DeleteFile(context context.Context, name string) error {
	if err := service.repo.DeleteFileByName(context, name); err != nil {
		return err
	}

	if err := service.blobs.Remove(name); err != nil {
		// Metadata is already gone; log the stray blob and move on.
		service.logger.Error("media_blob_remove_failed",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
	}

	service.logger.Warn("media_deleted", slog.String("name", name))
	return nil
}

// sanitizeName slugs the base name, keeps the extension, and strips any
// path components a hostile client sent along.
func sanitizeName(filename string) string {
	base := filepath.Base(filename)
	ext := strings.ToLower(filepath.Ext(base))
	stem := slugpkg.From(strings.TrimSuffix(base, filepath.Ext(base)))

	if stem == "" {
		return ""
	}
	return fmt.Sprintf("%s%s", stem, ext)
}
