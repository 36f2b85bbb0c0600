package platform

import "github.com/modu-ai/dockergen/internal/core/project"

// Suggest returns the platform the scanned markers point to, or zero when
// they point to none or to more than one. The result only preselects the
// interactive choice; it is never applied without asking.
func Suggest(scan *project.ScanResult) Kind {
	if scan == nil {
		return 0
	}

	var found []Kind
	for _, m := range scan.Markers() {
		switch m {
		case project.MarkerPackageJSON:
			found = append(found, NodeJS)
		case project.MarkerPom:
			found = append(found, Java)
		case project.MarkerCsproj:
			switch {
			case scan.IsWebProject():
				found = append(found, ASPNetCore)
			case scan.CsprojSDK != "":
				found = append(found, DotNetConsole)
			default:
				// Old-style project files do not say which.
				return 0
			}
		}
	}

	if len(found) != 1 {
		return 0
	}
	return found[0]
}
