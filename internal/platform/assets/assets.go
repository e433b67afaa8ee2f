// Copyright (c) 2026 Inkpress. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package assets provides object storage for uploaded media (story covers,
blog images, interview portraits).

# Architecture

This package belongs to the Infrastructure layer. Services depend on the
Uploader interface; the S3 implementation is wired at startup so tests can
substitute an in-memory fake.
*/
package assets

import (
	"context"
	"path"
	"strings"

	"github.com/taibuivan/inkpress/pkg/uuidv7"
)

// Uploader stores a binary asset and returns its publicly reachable URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename string, folder string) (string, error)
}

// ObjectKey builds a collision-free storage key for an uploaded file.
//
// The original filename is kept only for its extension; the basename is
// replaced by a UUIDv7 so keys sort by upload time.
func ObjectKey(folder string, filename string) string {
	extension := strings.ToLower(path.Ext(filename))
	return folder + "/" + uuidv7.New() + extension
}

// ContentTypeFor maps common image extensions to their MIME types.
//
// Unknown extensions fall back to application/octet-stream.
func ContentTypeFor(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
