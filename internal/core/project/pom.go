package project

import (
	"regexp"
	"strings"
)

var (
	pomCommentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
	pomParentPattern  = regexp.MustCompile(`(?s)<parent\b[^>]*>(.*?)</parent>`)

	// pomNestedBlocks hold artifactId/version elements that belong to other
	// artifacts and must not be mistaken for the project's own.
	pomNestedBlocks = []*regexp.Regexp{
		regexp.MustCompile(`(?s)<dependencyManagement\b[^>]*>.*?</dependencyManagement>`),
		regexp.MustCompile(`(?s)<dependencies\b[^>]*>.*?</dependencies>`),
		regexp.MustCompile(`(?s)<build\b[^>]*>.*?</build>`),
		regexp.MustCompile(`(?s)<profiles\b[^>]*>.*?</profiles>`),
		regexp.MustCompile(`(?s)<reporting\b[^>]*>.*?</reporting>`),
	}

	pomArtifactIDPattern = regexp.MustCompile(`(?s)<artifactId>\s*(.*?)\s*</artifactId>`)
	pomVersionPattern    = regexp.MustCompile(`(?s)<version>\s*(.*?)\s*</version>`)
)

// parsePom extracts the project's artifactId and version from pom.xml
// content without schema validation. When the project declares no version
// of its own, the parent version is returned, matching Maven inheritance.
func parsePom(content string) (artifactID, version string) {
	content = pomCommentPattern.ReplaceAllString(content, "")

	var parentVersion string
	if m := pomParentPattern.FindStringSubmatch(content); m != nil {
		parentVersion = firstElement(pomVersionPattern, m[1])
		content = strings.Replace(content, m[0], "", 1)
	}

	for _, block := range pomNestedBlocks {
		content = block.ReplaceAllString(content, "")
	}

	artifactID = firstElement(pomArtifactIDPattern, content)
	version = firstElement(pomVersionPattern, content)
	if version == "" {
		version = parentVersion
	}
	return artifactID, version
}

func firstElement(pattern *regexp.Regexp, content string) string {
	m := pattern.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
