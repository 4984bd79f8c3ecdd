// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

/*
Package upload persists multipart file submissions into the public
static-asset tree.

Files land under <root>/<subdir>/ named by upload timestamp plus the
sanitized original file name; the returned value is the relative URL stored
on the owning record or image row.

# Partial-failure policy

Saving is best-effort per file: callers save each file independently,
log failures, and continue. There is no rollback across a batch.
*/
package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/prachasan/heritage-api/pkg/filename"
)

// File is a transport-agnostic handle to one submitted file.
//
// Services accept []File rather than multipart primitives so tests can feed
// in-memory fixtures.
type File struct {
	// Name is the client-supplied original file name.
	Name string
	// Open yields the file contents. Each call returns a fresh reader.
	Open func() (io.ReadCloser, error)
}

// FromRequest collects every file submitted under the given multipart field.
// The request's multipart form must already be parsed.
func FromRequest(request *http.Request, field string) []File {
	if request.MultipartForm == nil {
		return nil
	}

	headers := request.MultipartForm.File[field]
	files := make([]File, 0, len(headers))
	for _, header := range headers {
		files = append(files, fromHeader(header))
	}
	return files
}

// OneFromRequest returns the first file submitted under the given field,
// or nil when the field is absent.
func OneFromRequest(request *http.Request, field string) *File {
	files := FromRequest(request, field)
	if len(files) == 0 {
		return nil
	}
	return &files[0]
}

func fromHeader(header *multipart.FileHeader) File {
	return File{
		Name: header.Filename,
		Open: func() (io.ReadCloser, error) {
			return header.Open()
		},
	}
}

// Saver persists one file and returns its public relative URL.
type Saver interface {
	Save(ctx context.Context, subdir string, file File) (string, error)
}

// DiskSaver writes uploads to the local filesystem.
type DiskSaver struct {
	root      string
	urlPrefix string
	now       func() time.Time
}

// NewDiskSaver constructs a [DiskSaver] rooted at the configured upload
// directory. urlPrefix is the path under which the tree is served.
func NewDiskSaver(root, urlPrefix string) *DiskSaver {
	return &DiskSaver{root: root, urlPrefix: urlPrefix, now: time.Now}
}

// Save writes the file under <root>/<subdir>/<unix-millis>-<sanitized-name>
// and returns the relative URL.
func (saver *DiskSaver) Save(ctx context.Context, subdir string, file File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", saver.now().UnixMilli(), filename.Sanitize(file.Name))
	dir := filepath.Join(saver.root, subdir)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("upload: failed to create directory %s: %w", subdir, err)
	}

	source, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("upload: failed to open submitted file: %w", err)
	}
	defer source.Close()

	destination, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("upload: failed to create file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return "", fmt.Errorf("upload: failed to write file: %w", err)
	}

	return path.Join(saver.urlPrefix, subdir, name), nil
}
