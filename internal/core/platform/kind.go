package platform

import (
	"fmt"
	"strings"
)

// Kind is the closed set of supported application platforms.
// The zero value means "not chosen".
type Kind int

const (
	NodeJS Kind = iota + 1
	ASPNetCore
	DotNetConsole
	Java
)

// Project file patterns a platform may require.
const (
	CsprojPattern = ".csproj"
	PomPattern    = "pom.xml"
)

// kindSpec is the parameter schema of a Kind.
type kindSpec struct {
	name        string
	aliases     []string
	defaultPort int
	requiresOS  bool
	projectFile string
}

// kindSpecs is the one table every per-platform decision reads from.
var kindSpecs = map[Kind]kindSpec{
	NodeJS: {
		name:        "Node.js",
		aliases:     []string{"node", "nodejs"},
		defaultPort: 3000,
	},
	ASPNetCore: {
		name:        "ASP.NET Core",
		aliases:     []string{"aspnetcore", "aspnet", "asp.net"},
		defaultPort: 80,
		requiresOS:  true,
		projectFile: CsprojPattern,
	},
	DotNetConsole: {
		name:        ".NET Core Console",
		aliases:     []string{"dotnet", "dotnetcore", "console", ".net"},
		defaultPort: 80,
		requiresOS:  true,
		projectFile: CsprojPattern,
	},
	Java: {
		name:        "Java",
		aliases:     []string{"jvm", "maven"},
		defaultPort: 3000,
		projectFile: PomPattern,
	},
}

// Kinds returns every supported Kind in display order.
func Kinds() []Kind {
	return []Kind{NodeJS, ASPNetCore, DotNetConsole, Java}
}

// Names returns the display names of every supported Kind.
func Names() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

// Valid reports whether k is a supported Kind.
func (k Kind) Valid() bool {
	_, ok := kindSpecs[k]
	return ok
}

// String returns the display name, e.g. "ASP.NET Core".
func (k Kind) String() string {
	if s, ok := kindSpecs[k]; ok {
		return s.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// DefaultPort is used when no port is supplied.
func (k Kind) DefaultPort() int {
	return kindSpecs[k].defaultPort
}

// RequiresOS reports whether the platform needs an OS flavor.
func (k Kind) RequiresOS() bool {
	return kindSpecs[k].requiresOS
}

// ProjectFile returns the marker pattern the platform requires, or "".
func (k Kind) ProjectFile() string {
	return kindSpecs[k].projectFile
}

// ExposesPort reports whether the generated image listens on the port.
func (k Kind) ExposesPort() bool {
	return k != DotNetConsole
}

// HasCompose reports whether the platform gets compose files.
func (k Kind) HasCompose() bool {
	return k == NodeJS || k == Java
}

// ParseKind maps a display name or alias, case-insensitively, to a Kind.
func ParseKind(s string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		spec := kindSpecs[k]
		if needle == strings.ToLower(spec.name) {
			return k, nil
		}
		for _, alias := range spec.aliases {
			if needle == alias {
				return k, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedPlatform, s, strings.Join(Names(), ", "))
}

// OS is the container OS flavor for .NET platforms.
type OS string

const (
	Windows OS = "Windows"
	Linux   OS = "Linux"
)

// OSNames lists the accepted OS flavors.
func OSNames() []string {
	return []string{string(Windows), string(Linux)}
}

// ParseOS maps a flavor name, case-insensitively, to an OS.
func ParseOS(s string) (OS, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows":
		return Windows, true
	case "linux":
		return Linux, true
	}
	return "", false
}
