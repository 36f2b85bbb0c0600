package prompt

import (
	"context"
	"fmt"
)

// ScriptedSource answers requests from a fixed queue, in request order.
// A nil entry is the "use default" signal. It backs automated runs and tests.
type ScriptedSource struct {
	answers []*string
	asked   []Field
}

// NewScriptedSource queues the given answers.
func NewScriptedSource(answers ...*string) *ScriptedSource {
	return &ScriptedSource{answers: answers}
}

// Script is a convenience for queues without "use default" entries.
func Script(values ...string) *ScriptedSource {
	answers := make([]*string, len(values))
	for i := range values {
		answers[i] = &values[i]
	}
	return NewScriptedSource(answers...)
}

// NextValueFor pops the next queued answer.
func (s *ScriptedSource) NextValueFor(ctx context.Context, req Request) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	if len(s.answers) == 0 {
		return Answer{}, fmt.Errorf("%w: requested %q", ErrQueueExhausted, req.Field)
	}

	next := s.answers[0]
	s.answers = s.answers[1:]
	s.asked = append(s.asked, req.Field)

	if next == nil {
		return NoValue(), nil
	}
	return Value(*next), nil
}

// Remaining returns the number of answers not yet consumed.
func (s *ScriptedSource) Remaining() int {
	return len(s.answers)
}

// Asked returns the fields requested so far, in order.
func (s *ScriptedSource) Asked() []Field {
	out := make([]Field, len(s.asked))
	copy(out, s.asked)
	return out
}
