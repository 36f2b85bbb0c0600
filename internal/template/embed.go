package template

import (
	"embed"
	"io/fs"
)

//go:embed templates schema
var embedded embed.FS

// EmbeddedTemplates returns the artifact templates rooted at templates/.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embedded, "templates")
}
