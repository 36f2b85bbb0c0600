package prompt

import (
	"context"
	"errors"
	"testing"
)

func TestScriptedSource(t *testing.T) {
	ctx := context.Background()
	port := "1234"
	src := NewScriptedSource(&port, nil)

	ans, err := src.NextValueFor(ctx, Request{Field: FieldPort})
	if err != nil {
		t.Fatalf("NextValueFor error: %v", err)
	}
	if !ans.Set || ans.Value != "1234" {
		t.Errorf("first answer = %+v, want set 1234", ans)
	}

	ans, err = src.NextValueFor(ctx, Request{Field: FieldOS})
	if err != nil {
		t.Fatalf("NextValueFor error: %v", err)
	}
	if ans.Set {
		t.Errorf("second answer = %+v, want no value", ans)
	}

	if src.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", src.Remaining())
	}

	_, err = src.NextValueFor(ctx, Request{Field: FieldPlatform})
	if !errors.Is(err, ErrQueueExhausted) {
		t.Errorf("exhausted queue error = %v, want ErrQueueExhausted", err)
	}

	asked := src.Asked()
	if len(asked) != 2 || asked[0] != FieldPort || asked[1] != FieldOS {
		t.Errorf("Asked() = %v, want [port osFlavor]", asked)
	}
}

func TestScriptedSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := Script("Node.js")
	if _, err := src.NextValueFor(ctx, Request{Field: FieldPlatform}); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if src.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1 (nothing consumed)", src.Remaining())
	}
}

func TestStaticSource(t *testing.T) {
	src := NewStaticSource(map[Field]string{
		FieldPort: " 8080 ",
		FieldOS:   "   ",
	})

	tests := []struct {
		field   Field
		wantSet bool
		want    string
	}{
		{FieldPort, true, "8080"},
		{FieldOS, false, ""},
		{FieldPlatform, false, ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			ans, err := src.NextValueFor(context.Background(), Request{Field: tt.field})
			if err != nil {
				t.Fatalf("NextValueFor error: %v", err)
			}
			if ans.Set != tt.wantSet || ans.Value != tt.want {
				t.Errorf("answer = %+v, want {%q %v}", ans, tt.want, tt.wantSet)
			}
		})
	}
}

func TestChainSource(t *testing.T) {
	first := NewStaticSource(map[Field]string{FieldPort: "80"})
	second := NewStaticSource(map[Field]string{FieldPort: "90", FieldOS: "Linux"})

	var lastCalled Field
	tail := SourceFunc(func(_ context.Context, req Request) (Answer, error) {
		lastCalled = req.Field
		return NoValue(), nil
	})

	chain := Chain(first, nil, second, tail)
	ctx := context.Background()

	ans, _ := chain.NextValueFor(ctx, Request{Field: FieldPort})
	if ans.Value != "80" {
		t.Errorf("port = %q, want first source to win", ans.Value)
	}
	if lastCalled != "" {
		t.Errorf("tail consulted for answered field %q", lastCalled)
	}

	ans, _ = chain.NextValueFor(ctx, Request{Field: FieldOS})
	if ans.Value != "Linux" {
		t.Errorf("os = %q, want Linux", ans.Value)
	}

	ans, _ = chain.NextValueFor(ctx, Request{Field: FieldPlatform})
	if ans.Set {
		t.Errorf("platform = %+v, want no value", ans)
	}
	if lastCalled != FieldPlatform {
		t.Errorf("tail not consulted for unanswered field")
	}
}

func TestChainSource_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	chain := Chain(SourceFunc(func(context.Context, Request) (Answer, error) {
		return Answer{}, boom
	}), NewStaticSource(map[Field]string{FieldPort: "1"}))

	if _, err := chain.NextValueFor(context.Background(), Request{Field: FieldPort}); !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
}
