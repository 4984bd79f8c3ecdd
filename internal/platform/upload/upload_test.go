// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package upload

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryFile(name, content string) File {
	return File{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func TestDiskSaver_Save(t *testing.T) {
	root := t.TempDir()
	saver := NewDiskSaver(root, "/uploads")
	saver.now = func() time.Time { return time.UnixMilli(1700000000000) }

	url, err := saver.Save(context.Background(), "tradition-images", memoryFile("my photo.jpg", "jpeg-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "/uploads/tradition-images/1700000000000-my-photo.jpg", url)

	written, err := os.ReadFile(filepath.Join(root, "tradition-images", "1700000000000-my-photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(written))
}

func TestDiskSaver_CreatesSubdirectory(t *testing.T) {
	root := t.TempDir()
	saver := NewDiskSaver(root, "/uploads")

	_, err := saver.Save(context.Background(), "public-policy-files", memoryFile("mou.pdf", "pdf"))
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, "public-policy-files"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDiskSaver_CancelledContext(t *testing.T) {
	saver := NewDiskSaver(t.TempDir(), "/uploads")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := saver.Save(ctx, "tradition-images", memoryFile("a.jpg", "x"))
	assert.Error(t, err)
}
