package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRendererRender(t *testing.T) {
	t.Run("successful_render", func(t *testing.T) {
		fs := fstest.MapFS{
			"Dockerfile.tmpl": &fstest.MapFile{
				Data: []byte("FROM {{.Image}}\nEXPOSE {{.Port}}\n"),
			},
		}
		r := NewRenderer(fs)

		data := map[string]string{
			"Image": "node:8.9-alpine",
			"Port":  "3000",
		}

		result, err := r.Render("Dockerfile.tmpl", data)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}

		expected := "FROM node:8.9-alpine\nEXPOSE 3000\n"
		if string(result) != expected {
			t.Errorf("Render result = %q, want %q", string(result), expected)
		}
	})

	t.Run("missing_key_strict_mode", func(t *testing.T) {
		fs := fstest.MapFS{
			"test.tmpl": &fstest.MapFile{
				Data: []byte("image: {{.Image}}\nports: {{.Port}}"),
			},
		}
		r := NewRenderer(fs)

		_, err := r.Render("test.tmpl", map[string]string{"Image": "app"})
		if err == nil {
			t.Fatal("expected error for missing key")
		}
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
		}
	})

	t.Run("nonexistent_template", func(t *testing.T) {
		r := NewRenderer(fstest.MapFS{})

		_, err := r.Render("nonexistent.tmpl", nil)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("parse_error", func(t *testing.T) {
		fs := fstest.MapFS{
			"bad.tmpl": &fstest.MapFile{Data: []byte("{{ if .X }}")},
		}
		r := NewRenderer(fs)

		if _, err := r.Render("bad.tmpl", map[string]bool{"X": true}); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

func TestRendererSprigFuncs(t *testing.T) {
	fs := fstest.MapFS{
		"f.tmpl": &fstest.MapFile{
			Data: []byte(`{{ .Name | upper }} {{ list "a" "b" | toJson }} {{ .Path | posixPath }}`),
		},
	}
	r := NewRenderer(fs)

	data := map[string]string{"Name": "app", "Path": `out\server.js`}
	result, err := r.Render("f.tmpl", data)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	want := `APP ["a","b"] out/server.js`
	if string(result) != want {
		t.Errorf("Render result = %q, want %q", string(result), want)
	}
}

func TestRendererPassthroughTokens(t *testing.T) {
	fs := fstest.MapFS{
		"java.tmpl": &fstest.MapFile{
			Data: []byte("ENV JAVA_OPTS=$JAVA_OPTS\nADD target/{{.Jar}} app.jar\n"),
		},
	}
	r := NewRenderer(fs)

	result, err := r.Render("java.tmpl", map[string]string{"Jar": "app-1.0.jar"})
	if err != nil {
		t.Fatalf("expected passthrough of $JAVA_OPTS, got error: %v", err)
	}
	if !strings.Contains(string(result), "$JAVA_OPTS") {
		t.Error("$JAVA_OPTS should be preserved in output")
	}
}

func TestUnexpandedTokenDetection(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		wantErr bool
	}{
		{"clean", "EXPOSE {{.Port}}", false},
		{"dollar_brace", "ENV HOME=${HOME}", true},
		{"dollar_var", "CMD $START", true},
		{"literal_braces", `{{"{{.Port}}"}}`, true},
		{"lowercase_dollar_ok", "echo $lower", false},
		{"token_in_branch", "{{ if .Port }}CMD $START{{ end }}", true},
		{"token_in_else", "{{ if .Port }}ok{{ else }}${X}{{ end }}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := fstest.MapFS{"t.tmpl": &fstest.MapFile{Data: []byte(tt.tmpl)}}
			_, err := NewRenderer(fs).Render("t.tmpl", map[string]string{"Port": "80"})
			if tt.wantErr {
				if !errors.Is(err, ErrUnexpandedToken) {
					t.Errorf("expected ErrUnexpandedToken, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRendererUserValuesNotScanned(t *testing.T) {
	fs := fstest.MapFS{
		"node.tmpl": &fstest.MapFile{Data: []byte(`CMD ["node", {{ .Main | toJson }}]` + "\n")},
	}
	r := NewRenderer(fs)

	tests := []string{"$APP_HOME/server.js", "${dir}/index.js", "{{.Main}}.js"}
	for _, main := range tests {
		t.Run(main, func(t *testing.T) {
			result, err := r.Render("node.tmpl", map[string]string{"Main": main})
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			if !strings.Contains(string(result), main) {
				t.Errorf("Render result = %q, want it to carry %q", result, main)
			}
		})
	}
}
