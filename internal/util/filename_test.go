package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExt(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"python", "py"},
		{"py", "py"},
		{"Go", "go"},
		{" rust ", "rs"},
		{"", "txt"},
		{"brainfuck", "txt"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExt(tt.lang))
		})
	}
}

func TestGetFilename(t *testing.T) {
	tests := []struct {
		name string
		code string
		lang string
		want string
	}{
		{"named in comment", "// main.go\npackage main", "go", "main.go"},
		{"named with other ext", "# config.json\nprint(1)", "py", "config.json.py"},
		{"fallback", "print(1)", "py", "snippet.py"},
		{"unknown language", "hello", "", "snippet.txt"},
		{"second line", "#!/bin/sh\n# run.sh\necho", "sh", "run.sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetFilename(tt.code, tt.lang))
		})
	}
}
