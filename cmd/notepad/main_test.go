package main

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options
	}{
		{"empty", nil, options{}},
		{"path", []string{"notes.txt"}, options{path: "notes.txt"}},
		{"new window", []string{"-new"}, options{newWindow: true}},
		{"new window keeps path", []string{"-new", "foo.txt"}, options{newWindow: true, path: "foo.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgsRejectsExtraFiles(t *testing.T) {
	var out bytes.Buffer
	_, err := parseArgs([]string{"a.txt", "b.txt"}, &out)

	require.Error(t, err)
	assert.Contains(t, out.String(), "usage: notepad [-new] [file]")
}

func TestParseArgsHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := parseArgs([]string{"-h"}, &out)

	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, out.String(), "-new")
}
