package tools

import (
	"context"
	"encoding/json"

	"github.com/kaptinlin/jsonrepair"

	"github.com/bububa/react-agents/schema"
)

type ITool interface {
	SetTitle(string)
	Title() string
	SetDescription(string)
	Description() string
	SetStartHook(fn func(context.Context, AnonymousTool, any))
	SetEndHook(fn func(context.Context, AnonymousTool, any, any))
	SetErrorHook(fn func(context.Context, AnonymousTool, any, error))
}

// Tool is a named callable with typed input and output schemas.
type Tool[I schema.Schema, O schema.Schema] interface {
	ITool
	Run(context.Context, *I) (*O, error)
}

// AnonymousTool is a tool invocable without compile-time knowledge of its
// schemas. It is the registry's unit of dispatch.
type AnonymousTool interface {
	ITool
	RunAnonymous(context.Context, any) (any, error)
}

type anonymous[I schema.Schema, O schema.Schema] struct {
	Tool[I, O]
}

// Anonymize adapts a typed Tool for registry dispatch. The input may be the
// tool's own input schema, or raw text from a model which is decoded (and
// repaired when the model emits broken JSON) into it.
func Anonymize[I schema.Schema, O schema.Schema](t Tool[I, O]) AnonymousTool {
	return &anonymous[I, O]{t}
}

func (a *anonymous[I, O]) RunAnonymous(ctx context.Context, input any) (any, error) {
	in, err := coerce[I](input)
	if err != nil {
		return nil, err
	}
	return a.Run(ctx, in)
}

func coerce[I schema.Schema](input any) (*I, error) {
	switch v := input.(type) {
	case *I:
		return v, nil
	case I:
		return &v, nil
	case schema.String:
		return decodeInput[I](string(v))
	case string:
		return decodeInput[I](v)
	case []byte:
		return decodeInput[I](string(v))
	}
	bs, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}
	return decodeInput[I](string(bs))
}

func decodeInput[I schema.Schema](raw string) (*I, error) {
	in := new(I)
	if p, ok := any(in).(*schema.String); ok {
		*p = schema.String(raw)
		return in, nil
	}
	if err := json.Unmarshal([]byte(raw), in); err == nil {
		return in, nil
	}
	repaired, err := jsonrepair.JSONRepair(raw)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(repaired), in); err != nil {
		return nil, err
	}
	return in, nil
}
