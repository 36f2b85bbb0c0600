package platform

import (
	"path"
	"strings"

	"github.com/modu-ai/dockergen/internal/core/project"
)

// Defaults used when the project files do not say otherwise.
const (
	DefaultNodeMain    = "index.js"
	DefaultJavaVersion = "0.0.1"
)

// ResolvedConfig is the fully determined parameter set for one invocation.
// It is built once and passed by value to every template.
type ResolvedConfig struct {
	Kind      Kind
	OS        OS // empty unless Kind.RequiresOS()
	Port      int
	ImageName string
	Project   ProjectMetadata
}

// ProjectMetadata is the platform-relevant part of a ScanResult.
type ProjectMetadata struct {
	// Node.js
	NPMStart bool
	Main     string

	// .NET; paths are slash-separated and relative to the target.
	CsprojPath   string
	ProjectDir   string
	ProjectFile  string
	AssemblyName string

	// Java
	ArtifactID string
	Version    string
}

// newProjectMetadata derives the metadata kind needs from scan.
func newProjectMetadata(kind Kind, scan *project.ScanResult, imageName string) ProjectMetadata {
	var meta ProjectMetadata

	switch kind {
	case NodeJS:
		meta.NPMStart = !scan.HasPackageJSON || !scan.PackageJSONValid || scan.StartScript != ""
		meta.Main = scan.Main
		if meta.Main == "" {
			meta.Main = DefaultNodeMain
		}
	case ASPNetCore, DotNetConsole:
		meta.CsprojPath = scan.CsprojPath
		meta.ProjectDir = path.Dir(scan.CsprojPath)
		meta.ProjectFile = path.Base(scan.CsprojPath)
		meta.AssemblyName = strings.TrimSuffix(meta.ProjectFile, path.Ext(meta.ProjectFile))
	case Java:
		meta.ArtifactID = scan.PomArtifactID
		if meta.ArtifactID == "" {
			meta.ArtifactID = imageName
		}
		meta.Version = scan.PomVersion
		if meta.Version == "" {
			meta.Version = DefaultJavaVersion
		}
	}

	return meta
}
