package wizard

import (
	"fmt"
	"strconv"

	"github.com/modu-ai/dockergen/internal/core/platform"
	"github.com/modu-ai/dockergen/internal/prompt"
)

// QuestionFor builds the question shown for req. Requests with options
// become selects; the rest are free input.
func QuestionFor(req prompt.Request) Question {
	q := Question{
		Field:   req.Field,
		Title:   req.Title,
		Default: req.Default,
	}
	if q.Title == "" {
		q.Title = string(req.Field)
	}

	if len(req.Options) == 0 {
		q.Type = QuestionTypeInput
		if req.Field == prompt.FieldPort && req.Default != "" {
			q.Description = fmt.Sprintf("Leave empty to use %s.", req.Default)
		}
		return q
	}

	q.Type = QuestionTypeSelect
	q.Options = make([]Option, len(req.Options))
	for i, v := range req.Options {
		q.Options[i] = Option{Label: v, Value: v, Desc: optionDesc(req.Field, v)}
	}
	return q
}

// optionDesc describes a platform option by its default port and the
// project file it needs.
func optionDesc(field prompt.Field, value string) string {
	if field != prompt.FieldPlatform {
		return ""
	}
	kind, err := platform.ParseKind(value)
	if err != nil {
		return ""
	}
	desc := "port " + strconv.Itoa(kind.DefaultPort())
	if pf := kind.ProjectFile(); pf != "" {
		desc += ", needs " + pf
	}
	return desc
}

// validatePort accepts blank input (use the default) or a legal port.
func validatePort(val string) error {
	if val == "" {
		return nil
	}
	_, err := platform.ParsePort(val)
	return err
}
