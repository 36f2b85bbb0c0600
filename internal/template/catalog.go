package template

import (
	"fmt"
	"io/fs"

	"github.com/modu-ai/dockergen/internal/core/platform"
)

// Artifact file names written into the target directory.
const (
	DockerfileName   = "Dockerfile"
	ComposeName      = "docker-compose.yml"
	ComposeDebugName = "docker-compose.debug.yml"
	DockerignoreName = ".dockerignore"
)

// ArtifactKind classifies an artifact for post-render validation.
type ArtifactKind string

const (
	ArtifactDockerfile ArtifactKind = "dockerfile"
	ArtifactCompose    ArtifactKind = "compose"
	ArtifactIgnore     ArtifactKind = "ignore"
)

// ArtifactSpec is one output file: its name relative to the target
// directory and a pure function producing its content.
type ArtifactSpec struct {
	Name   string
	Kind   ArtifactKind
	Render func(cfg platform.ResolvedConfig) ([]byte, error)
}

// Catalog maps each platform to its fixed, ordered artifact set.
type Catalog interface {
	// TemplatesFor returns the artifacts for kind. An unknown kind returns
	// an error wrapping platform.ErrUnsupportedPlatform.
	TemplatesFor(kind platform.Kind) ([]ArtifactSpec, error)
}

// catalogEntry binds an artifact name to its template path.
type catalogEntry struct {
	name     string
	kind     ArtifactKind
	template string
}

var catalogEntries = map[platform.Kind][]catalogEntry{
	platform.NodeJS: {
		{DockerfileName, ArtifactDockerfile, "node/Dockerfile.tmpl"},
		{ComposeName, ArtifactCompose, "node/docker-compose.yml.tmpl"},
		{ComposeDebugName, ArtifactCompose, "node/docker-compose.debug.yml.tmpl"},
		{DockerignoreName, ArtifactIgnore, "common/dockerignore.tmpl"},
	},
	platform.ASPNetCore: {
		{DockerfileName, ArtifactDockerfile, "dotnet/Dockerfile.tmpl"},
		{DockerignoreName, ArtifactIgnore, "common/dockerignore.tmpl"},
	},
	platform.DotNetConsole: {
		{DockerfileName, ArtifactDockerfile, "dotnet/Dockerfile.tmpl"},
		{DockerignoreName, ArtifactIgnore, "common/dockerignore.tmpl"},
	},
	platform.Java: {
		{DockerfileName, ArtifactDockerfile, "java/Dockerfile.tmpl"},
		{ComposeName, ArtifactCompose, "java/docker-compose.yml.tmpl"},
		{ComposeDebugName, ArtifactCompose, "java/docker-compose.debug.yml.tmpl"},
		{DockerignoreName, ArtifactIgnore, "common/dockerignore.tmpl"},
	},
}

type catalog struct {
	renderer Renderer
}

// NewCatalog creates a Catalog rendering templates from fsys.
func NewCatalog(fsys fs.FS) Catalog {
	return &catalog{renderer: NewRenderer(fsys)}
}

// NewEmbeddedCatalog creates a Catalog over the embedded templates.
func NewEmbeddedCatalog() (Catalog, error) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		return nil, fmt.Errorf("load embedded templates: %w", err)
	}
	return NewCatalog(fsys), nil
}

// TemplatesFor implements Catalog.
func (c *catalog) TemplatesFor(kind platform.Kind) ([]ArtifactSpec, error) {
	entries, ok := catalogEntries[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", platform.ErrUnsupportedPlatform, kind)
	}

	specs := make([]ArtifactSpec, 0, len(entries))
	for _, e := range entries {
		tmplName := e.template
		specs = append(specs, ArtifactSpec{
			Name: e.name,
			Kind: e.kind,
			Render: func(cfg platform.ResolvedConfig) ([]byte, error) {
				return c.renderer.Render(tmplName, NewContext(cfg))
			},
		})
	}
	return specs, nil
}
