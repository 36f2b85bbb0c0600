package template

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/modu-ai/dockergen/internal/core/platform"
)

func staticSpec(name string, kind ArtifactKind, content string) ArtifactSpec {
	return ArtifactSpec{
		Name: name,
		Kind: kind,
		Render: func(platform.ResolvedConfig) ([]byte, error) {
			return []byte(content), nil
		},
	}
}

func TestDeployerRender(t *testing.T) {
	t.Run("writes_in_catalog_order", func(t *testing.T) {
		dir := t.TempDir()
		cfg := nodeConfig(3000, true, "index.js")
		specs, err := newTestCatalog(t).TemplatesFor(platform.NodeJS)
		if err != nil {
			t.Fatalf("TemplatesFor: %v", err)
		}

		written, err := NewDeployer(nil).Render(context.Background(), dir, cfg, specs)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}

		want := []string{DockerfileName, ComposeName, ComposeDebugName, DockerignoreName}
		if !slices.Equal(written, want) {
			t.Errorf("written = %v, want %v", written, want)
		}
		for _, name := range want {
			info, err := os.Stat(filepath.Join(dir, name))
			if err != nil {
				t.Errorf("stat %s: %v", name, err)
				continue
			}
			if info.Mode().Perm() != 0o644 {
				t.Errorf("%s mode = %v, want 0644", name, info.Mode().Perm())
			}
		}
	})

	t.Run("overwrites_existing_files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, DockerfileName)
		if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}

		specs := []ArtifactSpec{staticSpec(DockerfileName, ArtifactDockerfile, "new")}
		if _, err := NewDeployer(nil).Render(context.Background(), dir, platform.ResolvedConfig{}, specs); err != nil {
			t.Fatalf("Render: %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("creates_missing_target", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a", "b")
		specs := []ArtifactSpec{staticSpec(DockerignoreName, ArtifactIgnore, ".git\n")}

		if _, err := NewDeployer(nil).Render(context.Background(), dir, platform.ResolvedConfig{}, specs); err != nil {
			t.Fatalf("Render: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, DockerignoreName)); err != nil {
			t.Errorf("expected %s to exist: %v", DockerignoreName, err)
		}
	})

	t.Run("target_is_file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "plain")
		if err := os.WriteFile(file, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		specs := []ArtifactSpec{staticSpec(DockerfileName, ArtifactDockerfile, "FROM scratch\n")}

		_, err := NewDeployer(nil).Render(context.Background(), file, platform.ResolvedConfig{}, specs)
		if !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("expected ErrInvalidTarget, got: %v", err)
		}
	})

	t.Run("render_failure_writes_nothing", func(t *testing.T) {
		dir := t.TempDir()
		boom := errors.New("boom")
		specs := []ArtifactSpec{
			staticSpec(DockerfileName, ArtifactDockerfile, "FROM scratch\n"),
			{
				Name: DockerignoreName,
				Kind: ArtifactIgnore,
				Render: func(platform.ResolvedConfig) ([]byte, error) {
					return nil, boom
				},
			},
		}

		_, err := NewDeployer(nil).Render(context.Background(), dir, platform.ResolvedConfig{}, specs)
		if !errors.Is(err, boom) {
			t.Fatalf("expected render error, got: %v", err)
		}
		assertEmptyDir(t, dir)
	})

	t.Run("invalid_compose_writes_nothing", func(t *testing.T) {
		dir := t.TempDir()
		specs := []ArtifactSpec{
			staticSpec(DockerfileName, ArtifactDockerfile, "FROM scratch\n"),
			staticSpec(ComposeName, ArtifactCompose, "version: '2.1'\n"),
		}

		_, err := NewDeployer(nil).Render(context.Background(), dir, platform.ResolvedConfig{}, specs)
		if !errors.Is(err, ErrInvalidArtifact) {
			t.Fatalf("expected ErrInvalidArtifact, got: %v", err)
		}
		assertEmptyDir(t, dir)
	})

	t.Run("write_failure_reports_path", func(t *testing.T) {
		dir := t.TempDir()
		// A directory in place of the second artifact makes its write fail.
		if err := os.Mkdir(filepath.Join(dir, DockerignoreName), 0o755); err != nil {
			t.Fatal(err)
		}
		specs := []ArtifactSpec{
			staticSpec(DockerfileName, ArtifactDockerfile, "FROM scratch\n"),
			staticSpec(DockerignoreName, ArtifactIgnore, ".git\n"),
		}

		written, err := NewDeployer(nil).Render(context.Background(), dir, platform.ResolvedConfig{}, specs)
		if !errors.Is(err, ErrWriteFailed) {
			t.Fatalf("expected ErrWriteFailed, got: %v", err)
		}
		var we *WriteError
		if !errors.As(err, &we) || we.Path != DockerignoreName {
			t.Errorf("expected WriteError for %s, got: %v", DockerignoreName, err)
		}
		if !slices.Equal(written, []string{DockerfileName}) {
			t.Errorf("written = %v, want [%s]", written, DockerfileName)
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		dir := t.TempDir()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		specs := []ArtifactSpec{staticSpec(DockerfileName, ArtifactDockerfile, "FROM scratch\n")}

		_, err := NewDeployer(nil).Render(ctx, dir, platform.ResolvedConfig{}, specs)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got: %v", err)
		}
		assertEmptyDir(t, dir)
	})

	t.Run("traversal_name_rejected", func(t *testing.T) {
		dir := t.TempDir()
		specs := []ArtifactSpec{staticSpec("../Dockerfile", ArtifactDockerfile, "FROM scratch\n")}

		_, err := NewDeployer(nil).Render(context.Background(), dir, platform.ResolvedConfig{}, specs)
		if !errors.Is(err, ErrPathTraversal) {
			t.Errorf("expected ErrPathTraversal, got: %v", err)
		}
	})
}

func TestDeployerGenerate(t *testing.T) {
	cfg := javaConfig()
	specs, err := newTestCatalog(t).TemplatesFor(platform.Java)
	if err != nil {
		t.Fatalf("TemplatesFor: %v", err)
	}

	artifacts, err := NewDeployer(nil).Generate(context.Background(), cfg, specs)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(artifacts) != len(specs) {
		t.Fatalf("got %d artifacts, want %d", len(artifacts), len(specs))
	}
	for i, a := range artifacts {
		if a.Name != specs[i].Name || len(a.Content) == 0 {
			t.Errorf("artifacts[%d] = %q (%d bytes), want %q", i, a.Name, len(a.Content), specs[i].Name)
		}
	}
}

func TestValidateDeployPath(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid_simple", "Dockerfile", false},
		{"valid_dotfile", ".dockerignore", false},
		{"valid_nested", "deploy/docker-compose.yml", false},
		{"empty", "", true},
		{"dot", ".", true},
		{"traversal_dotdot", "../Dockerfile", true},
		{"traversal_nested", "foo/../../Dockerfile", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDeployPath(root, tt.path)
			if tt.wantErr && !errors.Is(err, ErrPathTraversal) {
				t.Errorf("expected ErrPathTraversal for %q, got: %v", tt.path, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for path %q: %v", tt.path, err)
			}
		})
	}

	t.Run("absolute_path", func(t *testing.T) {
		absPath := filepath.Join(root, "absolute")
		if err := validateDeployPath(root, absPath); !errors.Is(err, ErrPathTraversal) {
			t.Errorf("expected ErrPathTraversal, got: %v", err)
		}
	})
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no files in %s, found %d", dir, len(entries))
	}
}

func TestDeployerWriteHook(t *testing.T) {
	dir := t.TempDir()
	specs := []ArtifactSpec{
		staticSpec(DockerfileName, ArtifactDockerfile, "FROM scratch\n"),
		staticSpec(DockerignoreName, ArtifactIgnore, ".git\n"),
	}

	var calls []string
	hook := func(name string, index, total int) {
		calls = append(calls, fmt.Sprintf("%s %d/%d", name, index, total))
	}

	d := NewDeployer(nil, WithWriteHook(hook))
	if _, err := d.Render(context.Background(), dir, platform.ResolvedConfig{}, specs); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := []string{"Dockerfile 1/2", ".dockerignore 2/2"}
	if !slices.Equal(calls, want) {
		t.Errorf("hook calls = %v, want %v", calls, want)
	}
}

func TestDeployerWithoutValidator(t *testing.T) {
	dir := t.TempDir()
	specs := []ArtifactSpec{staticSpec(ComposeName, ArtifactCompose, "not: [valid compose\n")}

	d := NewDeployer(nil, WithValidator(nil))
	if _, err := d.Render(context.Background(), dir, platform.ResolvedConfig{}, specs); err != nil {
		t.Fatalf("Render without validator: %v", err)
	}
}
