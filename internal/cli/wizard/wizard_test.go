package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/huh"

	"github.com/modu-ai/dockergen/internal/core/platform"
	"github.com/modu-ai/dockergen/internal/prompt"
)

func stubSource(run runFunc) *Source {
	s := NewSource(false)
	s.run = run
	return s
}

func TestQuestionFor(t *testing.T) {
	t.Run("platform_select", func(t *testing.T) {
		q := QuestionFor(prompt.Request{
			Field:   prompt.FieldPlatform,
			Title:   "Select application platform",
			Options: platform.Names(),
		})
		if q.Type != QuestionTypeSelect {
			t.Fatalf("Type = %v, want select", q.Type)
		}
		if len(q.Options) != len(platform.Kinds()) {
			t.Fatalf("got %d options", len(q.Options))
		}
		if q.Options[3].Value != "Java" || q.Options[3].Desc != "port 3000, needs pom.xml" {
			t.Errorf("Java option = %+v", q.Options[3])
		}
		if q.Options[0].Desc != "port 3000" {
			t.Errorf("Node.js option = %+v", q.Options[0])
		}
	})

	t.Run("os_select_without_desc", func(t *testing.T) {
		q := QuestionFor(prompt.Request{Field: prompt.FieldOS, Options: platform.OSNames()})
		if q.Type != QuestionTypeSelect || q.Options[0].Desc != "" {
			t.Errorf("question = %+v", q)
		}
		if q.Title != "osFlavor" {
			t.Errorf("Title = %q, want field name fallback", q.Title)
		}
	})

	t.Run("port_input", func(t *testing.T) {
		q := QuestionFor(prompt.Request{Field: prompt.FieldPort, Title: "Port", Default: "3000"})
		if q.Type != QuestionTypeInput {
			t.Fatalf("Type = %v, want input", q.Type)
		}
		if q.Default != "3000" || q.Description == "" {
			t.Errorf("question = %+v", q)
		}
	})
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"8080", false},
		{"0", true},
		{"65536", true},
		{"http", true},
	}
	for _, tt := range tests {
		err := validatePort(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("validatePort(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestSourceNextValueFor(t *testing.T) {
	t.Run("select_keeps_preselected_default", func(t *testing.T) {
		s := stubSource(func(context.Context, *huh.Form) error { return nil })
		ans, err := s.NextValueFor(context.Background(), prompt.Request{
			Field:   prompt.FieldOS,
			Options: platform.OSNames(),
		})
		if err != nil {
			t.Fatalf("NextValueFor: %v", err)
		}
		if ans != prompt.Value(platform.OSNames()[0]) {
			t.Errorf("answer = %+v", ans)
		}
	})

	t.Run("empty_input_is_no_value", func(t *testing.T) {
		s := stubSource(func(context.Context, *huh.Form) error { return nil })
		ans, err := s.NextValueFor(context.Background(), prompt.Request{Field: prompt.FieldPort, Default: "80"})
		if err != nil {
			t.Fatalf("NextValueFor: %v", err)
		}
		if ans.Set {
			t.Errorf("answer = %+v, want NoValue", ans)
		}
	})

	t.Run("user_abort", func(t *testing.T) {
		s := stubSource(func(context.Context, *huh.Form) error { return huh.ErrUserAborted })
		_, err := s.NextValueFor(context.Background(), prompt.Request{Field: prompt.FieldPort})
		if !errors.Is(err, ErrCancelled) {
			t.Errorf("expected ErrCancelled, got: %v", err)
		}
	})

	t.Run("form_failure", func(t *testing.T) {
		boom := errors.New("tty gone")
		s := stubSource(func(context.Context, *huh.Form) error { return boom })
		_, err := s.NextValueFor(context.Background(), prompt.Request{Field: prompt.FieldPort})
		if !errors.Is(err, boom) {
			t.Errorf("expected wrapped form error, got: %v", err)
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		called := false
		s := stubSource(func(context.Context, *huh.Form) error { called = true; return nil })

		_, err := s.NextValueFor(ctx, prompt.Request{Field: prompt.FieldPort})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got: %v", err)
		}
		if called {
			t.Error("form must not run after cancellation")
		}
	})
}

func TestAnswerFor(t *testing.T) {
	if got := answerFor("  8080 "); got != prompt.Value("8080") {
		t.Errorf("answerFor = %+v", got)
	}
	if got := answerFor("   "); got.Set {
		t.Errorf("answerFor(blank) = %+v, want NoValue", got)
	}
}
