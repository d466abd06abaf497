package tools

import (
	"context"
	"fmt"

	"github.com/bububa/react-agents/schema"
)

// Func wraps a plain function as a registrable tool with a single-string
// input and output boundary.
type Func struct {
	Config
	fn func(context.Context, string) (string, error)
}

var _ AnonymousTool = (*Func)(nil)

// NewFunc returns a tool backed by fn, registered under title.
func NewFunc(title string, description string, fn func(context.Context, string) (string, error), opts ...Option) *Func {
	ret := new(Func)
	ret.SetTitle(title)
	ret.SetDescription(description)
	ret.fn = fn
	for _, opt := range opts {
		opt(&ret.Config)
	}
	return ret
}

func (t *Func) RunAnonymous(ctx context.Context, input any) (any, error) {
	var raw string
	switch v := input.(type) {
	case schema.Schema:
		raw = schema.Stringify(v)
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		raw = fmt.Sprint(v)
	}
	t.OnStart(ctx, t, raw)
	out, err := t.fn(ctx, raw)
	if err != nil {
		t.OnError(ctx, t, raw, err)
		return nil, err
	}
	t.OnEnd(ctx, t, raw, out)
	return schema.String(out), nil
}
