// Copyright (c) 2026 Randfin. All rights reserved.

package schema

// ContentMediaFileTable represents the 'content.mediafile' table
type ContentMediaFileTable struct {
	Table       string
	ID          string
	Name        string
	ContentType string
	SizeBytes   string
	URLPath     string
	UploadedBy  string
	CreatedAt   string
}

// ContentMediaFile is the schema definition for content.mediafile
var ContentMediaFile = ContentMediaFileTable{
	Table:       "content.mediafile",
	ID:          "id",
	Name:        "name",
	ContentType: "contenttype",
	SizeBytes:   "sizebytes",
	URLPath:     "urlpath",
	UploadedBy:  "uploadedby",
	CreatedAt:   "createdat",
}
