// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

package filename_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prachasan/heritage-api/pkg/filename"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "report.pdf", "report.pdf"},
		{"spaces_to_dashes", "annual report 2024.pdf", "annual-report-2024.pdf"},
		{"thai_preserved", "ประเพณี สงกรานต์.jpg", "ประเพณี-สงกรานต์.jpg"},
		{"path_stripped", "../../etc/passwd", "passwd"},
		{"windows_path_stripped", `C:\Users\me\photo.png`, "photo.png"},
		{"unsafe_chars", "a?b*c|d.png", "a-b-c-d.png"},
		{"dash_runs_collapsed", "a - - b.png", "a-b.png"},
		{"empty_falls_back", "", "file"},
		{"only_unsafe_falls_back", "###", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filename.Sanitize(tt.input))
		})
	}
}

/*
TestSanitize_NormalizesUnicode verifies that a decomposed sequence (e + U+0301)
comes out identical to its precomposed form (é).
*/
func TestSanitize_NormalizesUnicode(t *testing.T) {
	decomposed := "caf\u0065\u0301.jpg"
	composed := "caf\u00e9.jpg"

	assert.Equal(t, filename.Sanitize(composed), filename.Sanitize(decomposed))
}
