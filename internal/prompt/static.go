package prompt

import (
	"context"
	"maps"
	"strings"
)

// StaticSource answers from a fixed map and never blocks. Fields without a
// non-blank value produce NoValue.
type StaticSource struct {
	values map[Field]string
}

// NewStaticSource copies values into a new StaticSource.
func NewStaticSource(values map[Field]string) *StaticSource {
	s := &StaticSource{values: make(map[Field]string, len(values))}
	maps.Copy(s.values, values)
	return s
}

// NextValueFor returns the stored value for req.Field, if any.
func (s *StaticSource) NextValueFor(ctx context.Context, req Request) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	v := strings.TrimSpace(s.values[req.Field])
	if v == "" {
		return NoValue(), nil
	}
	return Value(v), nil
}

// ChainSource asks each source in turn and returns the first set answer.
// Later sources are only consulted when earlier ones have no value, so an
// interactive source placed last is only shown for fields nobody else filled.
type ChainSource []Source

// Chain builds a ChainSource, dropping nil entries.
func Chain(sources ...Source) ChainSource {
	out := make(ChainSource, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// NextValueFor implements Source.
func (c ChainSource) NextValueFor(ctx context.Context, req Request) (Answer, error) {
	for _, s := range c {
		ans, err := s.NextValueFor(ctx, req)
		if err != nil {
			return Answer{}, err
		}
		if ans.Set {
			return ans, nil
		}
	}
	return NoValue(), nil
}
