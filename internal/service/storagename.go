package service

import (
	"fmt"
	"strings"
)

// Storage names are derived, never caller-controlled: {contractID}_{version}_
// {sanitized filename}, flat under the upload bucket. Allowed characters are
// A-Za-z0-9 . _ - ; everything else is replaced, so a stored name can never
// address anything outside the upload root.

// SanitizeFilename reduces a user-supplied display filename to its last path
// segment and maps every character outside the allow-list to '_'. Leading
// dots are stripped and runs of dots collapse to one, so every name this
// produces passes ValidStorageName. Returns "" when nothing displayable
// survives.
func SanitizeFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	var b strings.Builder
	prevDot := false
	for _, r := range name {
		switch {
		case r == '.':
			if prevDot {
				continue
			}
			b.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
		prevDot = r == '.'
	}
	out := strings.TrimLeft(b.String(), ".")
	if strings.Trim(out, "._-") == "" {
		return ""
	}
	return out
}

// StorageName derives the object name for one document revision.
func StorageName(contractID string, version int, sanitizedFilename string) string {
	return fmt.Sprintf("%s_%d_%s", contractID, version, sanitizedFilename)
}

// ValidStorageName reports whether a requested name is safe to hand to the
// object store: non-empty, no separators or traversal sequences, and only
// characters the sanitizer can produce.
func ValidStorageName(name string) bool {
	if name == "" || strings.Contains(name, "..") {
		return false
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}
