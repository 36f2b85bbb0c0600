package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"
	"text/template/parse"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncMap is sprig's text function map plus local helpers.
var templateFuncMap = func() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	// posixPath converts Windows backslash paths to forward-slash POSIX paths.
	funcs["posixPath"] = func(s string) string {
		return strings.ReplaceAll(s, "\\", "/")
	}
	return funcs
}()

// unexpandedTokenPattern detects leftover dynamic tokens in template text.
// Matches ${VAR}, {{VAR}}, and $VAR patterns.
var unexpandedTokenPattern = regexp.MustCompile(`\$\{[A-Za-z_][A-Za-z0-9_]*\}|\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}|\$[A-Z_][A-Z0-9_]*`)

// runtimePassthroughTokens are expanded by the container runtime, not by us.
var runtimePassthroughTokens = []string{
	"$JAVA_OPTS",
}

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template and executes it with data. Returns
	// ErrUnexpandedToken if the template's own text carries a token no one
	// will expand, and ErrMissingTemplateKey if a key is missing.
	Render(templateName string, data any) ([]byte, error)
}

type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
// In production the fs.FS comes from EmbeddedTemplates; in tests use
// testing/fstest.MapFS.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	for _, t := range tmpl.Templates() {
		if t.Tree == nil {
			continue
		}
		if err := checkOwnedText(t.Tree.Root); err != nil {
			return nil, fmt.Errorf("%w in %s", err, templateName)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	return buf.Bytes(), nil
}

// checkOwnedText scans the literal text and string constants of a parsed
// template for unexpanded tokens. Values substituted at execution time are
// user data and are never scanned.
func checkOwnedText(node parse.Node) error {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return nil
		}
		for _, child := range n.Nodes {
			if err := checkOwnedText(child); err != nil {
				return err
			}
		}
	case *parse.TextNode:
		return checkToken(string(n.Text))
	case *parse.ActionNode:
		return checkOwnedText(n.Pipe)
	case *parse.PipeNode:
		if n == nil {
			return nil
		}
		for _, cmd := range n.Cmds {
			for _, arg := range cmd.Args {
				if err := checkOwnedText(arg); err != nil {
					return err
				}
			}
		}
	case *parse.StringNode:
		return checkToken(n.Text)
	case *parse.IfNode:
		return checkBranch(&n.BranchNode)
	case *parse.RangeNode:
		return checkBranch(&n.BranchNode)
	case *parse.WithNode:
		return checkBranch(&n.BranchNode)
	}
	return nil
}

func checkBranch(b *parse.BranchNode) error {
	if err := checkOwnedText(b.Pipe); err != nil {
		return err
	}
	if err := checkOwnedText(b.List); err != nil {
		return err
	}
	return checkOwnedText(b.ElseList)
}

func checkToken(text string) error {
	for _, tok := range runtimePassthroughTokens {
		text = strings.ReplaceAll(text, tok, "")
	}
	if loc := unexpandedTokenPattern.FindString(text); loc != "" {
		return fmt.Errorf("%w: found %q", ErrUnexpandedToken, loc)
	}
	return nil
}
