package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain name passes through", input: "msa.pdf", want: "msa.pdf"},
		{name: "spaces become underscores", input: "master agreement.pdf", want: "master_agreement.pdf"},
		{name: "unix path reduced to base", input: "/etc/passwd", want: "passwd"},
		{name: "windows path reduced to base", input: `C:\temp\evil.exe`, want: "evil.exe"},
		{name: "traversal prefix dropped", input: "../../secret.txt", want: "secret.txt"},
		{name: "leading dots stripped", input: ".hidden.pdf", want: "hidden.pdf"},
		{name: "dot runs collapse", input: "report..final.pdf", want: "report.final.pdf"},
		{name: "inner traversal collapses", input: "a....b.pdf", want: "a.b.pdf"},
		{name: "unicode replaced", input: "契約.pdf", want: "__.pdf"},
		{name: "nothing usable", input: "../..", want: ""},
		{name: "empty input", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.input))
		})
	}
}

func TestStorageName(t *testing.T) {
	assert.Equal(t, "c1_3_msa.pdf", StorageName("c1", 3, "msa.pdf"))
}

func TestStorageNameRoundTrip(t *testing.T) {
	// Every name the upload path derives must be accepted back by the
	// download path, whatever the caller named the file.
	inputs := []string{
		"msa.pdf",
		"report..final.pdf",
		"...sneaky..name...txt",
		"master agreement (signed).pdf",
		`C:\temp\..\evil..exe`,
		"契約..最終.pdf",
	}
	for _, input := range inputs {
		sanitized := SanitizeFilename(input)
		if sanitized == "" {
			continue
		}
		name := StorageName("550e8400-e29b-41d4-a716-446655440000", 1, sanitized)
		assert.True(t, ValidStorageName(name), "input %q produced %q", input, name)
	}
}

func TestValidStorageName(t *testing.T) {
	valid := []string{"c1_1_msa.pdf", "550e8400-e29b-41d4-a716-446655440000_12_a_b-c.txt"}
	for _, name := range valid {
		assert.True(t, ValidStorageName(name), "name %q", name)
	}

	invalid := []string{"", "a/b.pdf", `a\b.pdf`, "..", "a..b.pdf", "a b.pdf", "a\x00b", "café.pdf"}
	for _, name := range invalid {
		assert.False(t, ValidStorageName(name), "name %q", name)
	}
}
