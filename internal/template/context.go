package template

import (
	"strconv"

	"github.com/modu-ai/dockergen/internal/core/platform"
)

// Image tags used by the generated Dockerfiles.
const (
	NodeImage          = "node:8.9-alpine"
	JavaImage          = "openjdk:8-jdk-alpine"
	AspNetRuntimeImage = "microsoft/aspnetcore:2.0"
	AspNetBuildImage   = "microsoft/aspnetcore-build:2.0"
	DotNetRuntimeImage = "microsoft/dotnet:2.0-runtime"
	DotNetBuildImage   = "microsoft/dotnet:2.0-sdk"

	// WindowsTagSuffix is appended to .NET image tags for Windows containers.
	WindowsTagSuffix = "-nanoserver-1709"
)

// Debugger ports published by the debug compose files.
const (
	NodeInspectPort = 9229
	JavaDebugPort   = 5005
)

// Context provides data for artifact rendering. It is built once from a
// ResolvedConfig so every artifact sees the same port and image name.
// All fields are exported for use with Go's text/template package.
type Context struct {
	ImageName  string
	Port       string
	ExposePort bool

	// Node.js
	NPMStart    bool
	Main        string
	InspectPort string

	RuntimeImage string
	BuildImage   string // .NET only

	// .NET
	CsprojPath    string
	ProjectCopyTo string // "dir/" or "./"
	WorkDir       string // "/src" or "/src/dir"
	ProjectFile   string
	AssemblyName  string

	// Java
	ArtifactID string
	Version    string
	DebugPort  string
}

// NewContext derives the render context from cfg.
func NewContext(cfg platform.ResolvedConfig) *Context {
	c := &Context{
		ImageName:   cfg.ImageName,
		Port:        strconv.Itoa(cfg.Port),
		ExposePort:  cfg.Kind.ExposesPort(),
		NPMStart:    cfg.Project.NPMStart,
		Main:        cfg.Project.Main,
		InspectPort: strconv.Itoa(NodeInspectPort),
		ArtifactID:  cfg.Project.ArtifactID,
		Version:     cfg.Project.Version,
		DebugPort:   strconv.Itoa(JavaDebugPort),
	}

	switch cfg.Kind {
	case platform.NodeJS:
		c.RuntimeImage = NodeImage
	case platform.Java:
		c.RuntimeImage = JavaImage
	case platform.ASPNetCore:
		c.RuntimeImage, c.BuildImage = AspNetRuntimeImage, AspNetBuildImage
	case platform.DotNetConsole:
		c.RuntimeImage, c.BuildImage = DotNetRuntimeImage, DotNetBuildImage
	}
	if c.BuildImage != "" {
		if cfg.OS == platform.Windows {
			c.RuntimeImage += WindowsTagSuffix
			c.BuildImage += WindowsTagSuffix
		}
		c.CsprojPath = cfg.Project.CsprojPath
		c.ProjectFile = cfg.Project.ProjectFile
		c.AssemblyName = cfg.Project.AssemblyName
		c.ProjectCopyTo, c.WorkDir = "./", "/src"
		if dir := cfg.Project.ProjectDir; dir != "" && dir != "." {
			c.ProjectCopyTo = dir + "/"
			c.WorkDir = "/src/" + dir
		}
	}

	return c
}
