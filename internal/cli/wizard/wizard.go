package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/dockergen/internal/prompt"
)

// runFunc executes a form; tests replace it to avoid a terminal.
type runFunc func(ctx context.Context, form *huh.Form) error

// Source is a prompt.Source that asks the user through huh forms.
type Source struct {
	theme      *huh.Theme
	accessible bool
	run        runFunc
}

// NewSource creates a Source. Accessible mode trades the TUI for plain
// line-based prompts, for screen readers.
func NewSource(accessible bool) *Source {
	return &Source{
		theme:      newWizardTheme(),
		accessible: accessible,
		run: func(ctx context.Context, form *huh.Form) error {
			return form.RunWithContext(ctx)
		},
	}
}

// NextValueFor implements prompt.Source.
// Each question runs as its own huh.Form, so a later request can depend on
// an earlier answer.
func (s *Source) NextValueFor(ctx context.Context, req prompt.Request) (prompt.Answer, error) {
	if err := ctx.Err(); err != nil {
		return prompt.Answer{}, err
	}

	q := QuestionFor(req)
	var value string
	form := huh.NewForm(huh.NewGroup(buildField(&q, &value))).
		WithTheme(s.theme).
		WithAccessible(s.accessible)

	if err := s.run(ctx, form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return prompt.Answer{}, ErrCancelled
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return prompt.Answer{}, ctxErr
		}
		return prompt.Answer{}, fmt.Errorf("wizard error: %w", err)
	}

	return answerFor(value), nil
}

// answerFor maps blank input to the "use default" answer.
func answerFor(value string) prompt.Answer {
	v := strings.TrimSpace(value)
	if v == "" {
		return prompt.NoValue()
	}
	return prompt.Value(v)
}

// buildField creates the huh field for q, storing the answer in value.
func buildField(q *Question, value *string) huh.Field {
	if q.Type == QuestionTypeSelect {
		return buildSelectField(q, value)
	}
	return buildInputField(q, value)
}

// buildSelectField creates a huh.Select field for a select-type question.
// Options are static, which keeps the viewport sized to the option list.
func buildSelectField(q *Question, value *string) *huh.Select[string] {
	if q.Default != "" {
		*value = q.Default
	} else if len(q.Options) > 0 {
		*value = q.Options[0].Value
	}

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Options(opts...).
		Value(value)
	if q.Description != "" {
		sel = sel.Description(q.Description)
	}
	return sel
}

// buildInputField creates a huh.Input field for an input-type question.
func buildInputField(q *Question, value *string) *huh.Input {
	inp := huh.NewInput().
		Title(q.Title).
		Value(value)

	if q.Description != "" {
		inp = inp.Description(q.Description)
	}
	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}
	if q.Field == prompt.FieldPort {
		inp = inp.CharLimit(5).Validate(func(val string) error {
			return validatePort(strings.TrimSpace(val))
		})
	}
	return inp
}

// newWizardTheme creates a huh.Theme with the dockergen colors.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#1D63B8", Dark: ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#0B7FA8", Dark: ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
