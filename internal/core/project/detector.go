package project

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Marker is a project file kind Scan can find.
type Marker string

// Markers in scan order.
const (
	MarkerPackageJSON Marker = PackageJSONFile
	MarkerCsproj      Marker = CsprojExt
	MarkerPom         Marker = PomFile
)

// Well-known MSBuild project SDKs.
const (
	SDKDefault = "Microsoft.NET.Sdk"
	SDKWeb     = "Microsoft.NET.Sdk.Web"
)

// csprojSDKPattern matches the Sdk attribute of the root Project element.
var csprojSDKPattern = regexp.MustCompile(`<Project\b[^>]*\bSdk\s*=\s*"([^"]+)"`)

// Markers returns the marker kinds present in r, in scan order.
func (r *ScanResult) Markers() []Marker {
	var markers []Marker
	if r.HasPackageJSON {
		markers = append(markers, MarkerPackageJSON)
	}
	if r.HasCsproj() {
		markers = append(markers, MarkerCsproj)
	}
	if r.HasPom {
		markers = append(markers, MarkerPom)
	}
	return markers
}

// IsWebProject reports whether the .csproj declares the web SDK.
func (r *ScanResult) IsWebProject() bool {
	return strings.EqualFold(r.CsprojSDK, SDKWeb)
}

// detectCsprojSDK returns the Sdk attribute of root/rel, or "" for
// old-style project files. A read failure is only a lost hint.
func (s *projectScanner) detectCsprojSDK(root, rel string) string {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		s.logger.Debug("failed to read project file", "path", rel, "error", err)
		return ""
	}
	m := csprojSDKPattern.FindSubmatch(data)
	if m == nil {
		return ""
	}
	// Versioned form: Sdk="Microsoft.NET.Sdk.Web/1.0.0".
	sdk, _, _ := strings.Cut(string(m[1]), "/")
	return strings.TrimSpace(sdk)
}
