// Package prompt defines the boundary through which the pipeline asks for
// parameters it cannot derive on its own. Values are requested by logical
// field name and answered with either a literal value or an explicit
// "no value" signal, which lets the caller fall back to a default.
package prompt

import (
	"context"
	"errors"
)

// Field names a parameter the pipeline may request.
type Field string

// Fields requested by the resolver, in the order they are asked.
const (
	FieldPlatform Field = "platform"
	FieldOS       Field = "osFlavor"
	FieldPort     Field = "port"
)

// ErrQueueExhausted is returned by ScriptedSource when more values are
// requested than were queued.
var ErrQueueExhausted = errors.New("prompt: no scripted answer left")

// Request describes a single parameter request.
type Request struct {
	Field   Field
	Title   string
	Options []string // allowed values for select-style fields, empty for free input
	Default string   // shown to interactive users, never applied by a Source
}

// Answer is the response to a Request. Set is false when the source has no
// value and the caller should use its default.
type Answer struct {
	Value string
	Set   bool
}

// Value returns a set Answer.
func Value(v string) Answer {
	return Answer{Value: v, Set: true}
}

// NoValue returns the explicit "use default" answer.
func NoValue() Answer {
	return Answer{}
}

// Source supplies parameter values on request.
type Source interface {
	NextValueFor(ctx context.Context, req Request) (Answer, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, req Request) (Answer, error)

// NextValueFor calls f.
func (f SourceFunc) NextValueFor(ctx context.Context, req Request) (Answer, error) {
	return f(ctx, req)
}
