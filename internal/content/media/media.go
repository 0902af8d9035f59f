// Copyright (c) 2026 Randfin. All rights reserved.

// Package media manages the admin media library: uploaded images and
// documents referenced by articles. Metadata lives in Postgres, the bytes
// on local disk served under a static route.
package media

import "time"

// File is one media library entry.
type File struct {
	ID string `json:"id"`

	// Name is the sanitized, unique filename. It is the public identifier:
	// the dashboard deletes by name, not by ID.
	Name string `json:"name"`

	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`

	// URLPath is where the file is served from (e.g. "/media/chart.png").
	URLPath string `json:"url_path"`

	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// Upload size ceiling. Large enough for print-quality images, small enough
// that a single request cannot exhaust disk.
const MaxUploadBytes = 10 << 20

// ContentTypes accepted by the library.
var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

// Global field names for validation
const (
	FieldName = "name"
	FieldFile = "file"
)
