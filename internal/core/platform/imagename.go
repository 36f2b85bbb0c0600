package platform

import (
	"path/filepath"
	"strings"

	"github.com/distribution/reference"
	"golang.org/x/text/unicode/norm"
)

// ImageName derives the Docker image name from the base name of dir:
// lower-cased, with every rune outside [a-z0-9._-] replaced by '-'.
func ImageName(dir string) string {
	base := norm.NFC.String(filepath.Base(filepath.Clean(dir)))
	base = strings.ToLower(base)

	var b strings.Builder
	b.Grow(len(base))
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// ValidateImageName reports whether name is a legal Docker repository name.
func ValidateImageName(name string) error {
	_, err := reference.ParseNormalizedNamed(name)
	return err
}
