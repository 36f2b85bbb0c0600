package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// Marker file names recognised by the scanner.
const (
	PackageJSONFile = "package.json"
	PomFile         = "pom.xml"
	CsprojExt       = ".csproj"
)

// maxCsprojDepth bounds the recursive .csproj search.
const maxCsprojDepth = 8

// ScanResult holds platform-agnostic facts gathered from a directory.
// It is produced once per invocation and never mutated afterwards.
type ScanResult struct {
	HasPackageJSON   bool   `yaml:"has_package_json"`
	PackageJSONValid bool   `yaml:"package_json_valid"`
	StartScript      string `yaml:"start_script,omitempty"`
	Main             string `yaml:"main,omitempty"`

	// CsprojPath is slash-separated and relative to the scanned directory.
	CsprojPath string `yaml:"csproj_path,omitempty"`
	CsprojSDK  string `yaml:"csproj_sdk,omitempty"`

	HasPom        bool   `yaml:"has_pom"`
	PomArtifactID string `yaml:"pom_artifact_id,omitempty"`
	PomVersion    string `yaml:"pom_version,omitempty"`
}

// HasCsproj reports whether a .csproj file was found.
func (r *ScanResult) HasCsproj() bool {
	return r.CsprojPath != ""
}

// Scanner extracts marker-file metadata from a project directory.
type Scanner interface {
	// Scan inspects root and returns what it found. Missing marker files are
	// not errors.
	Scan(root string) (*ScanResult, error)
}

type projectScanner struct {
	logger *slog.Logger
}

// NewScanner creates a Scanner. A nil logger discards output.
func NewScanner(logger *slog.Logger) Scanner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectScanner{logger: logger}
}

// skipDirs lists directories that never contain the project's own .csproj.
var skipDirs = map[string]bool{
	"node_modules": true,
	"bin":          true,
	"obj":          true,
	"out":          true,
	"target":       true,
	"build":        true,
	"dist":         true,
	"vendor":       true,
	"packages":     true,
	"__pycache__":  true,
}

// Scan inspects root for package.json, *.csproj and pom.xml.
func (s *projectScanner) Scan(root string) (*ScanResult, error) {
	root = filepath.Clean(root)
	if err := validateRoot(root); err != nil {
		return nil, err
	}

	s.logger.Debug("scanning project", "root", root)

	result := &ScanResult{}

	if err := s.scanPackageJSON(root, result); err != nil {
		return nil, err
	}

	csproj, err := s.findCsproj(root)
	if err != nil {
		return nil, err
	}
	result.CsprojPath = csproj
	if csproj != "" {
		result.CsprojSDK = s.detectCsprojSDK(root, csproj)
	}

	if err := s.scanPom(root, result); err != nil {
		return nil, err
	}

	s.logger.Debug("scan complete",
		"package_json", result.HasPackageJSON,
		"csproj", result.CsprojPath,
		"pom", result.HasPom,
	)
	return result, nil
}

// packageJSON is the subset of package.json the templates care about.
type packageJSON struct {
	Main    string            `json:"main"`
	Scripts map[string]string `json:"scripts"`
}

func (s *projectScanner) scanPackageJSON(root string, result *ScanResult) error {
	data, ok, err := readMarker(root, PackageJSONFile)
	if err != nil || !ok {
		return err
	}
	result.HasPackageJSON = true

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		s.logger.Debug("failed to parse package.json", "error", err)
		return nil
	}

	result.PackageJSONValid = true
	result.StartScript = strings.TrimSpace(pkg.Scripts["start"])
	result.Main = strings.TrimSpace(pkg.Main)
	return nil
}

func (s *projectScanner) scanPom(root string, result *ScanResult) error {
	data, ok, err := readMarker(root, PomFile)
	if err != nil || !ok {
		return err
	}
	result.HasPom = true
	result.PomArtifactID, result.PomVersion = parsePom(string(data))
	return nil
}

// findCsproj returns the lexicographically smallest relative path of a
// .csproj file under root, or "" when there is none.
func (s *projectScanner) findCsproj(root string) (string, error) {
	var matches []string

	err := filepath.WalkDir(root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			if errors.Is(err, fs.ErrPermission) {
				return fmt.Errorf("%w: %s: %w", ErrScanFailed, p, err)
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			if rel == "." {
				return nil
			}
			name := entry.Name()
			if skipDirs[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if strings.Count(rel, "/")+1 >= maxCsprojDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.EqualFold(path.Ext(rel), CsprojExt) {
			matches = append(matches, rel)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("search %s files in %s: %w", CsprojExt, root, err)
	}

	if len(matches) == 0 {
		return "", nil
	}
	slices.Sort(matches)
	if len(matches) > 1 {
		s.logger.Debug("multiple project files found, using first", "chosen", matches[0], "count", len(matches))
	}
	return matches[0], nil
}

// readMarker reads root/name. A missing file yields ok=false with no error.
func readMarker(root, name string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: read %s: %w", ErrScanFailed, name, err)
	}
	return data, true, nil
}

// validateRoot checks that the root path is a valid, accessible directory.
func validateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRoot, root)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}
	return nil
}
