package agents

import (
	"context"
	"errors"

	"github.com/bububa/react-agents/components"
	"github.com/bububa/react-agents/schema"
	"github.com/bububa/react-agents/tools"
)

// ToolEndAgent folds a tool result into a final response. Besides running,
// it must accept the tool message injected between the two model calls.
type ToolEndAgent[I schema.Schema, O schema.Schema] interface {
	TypeableAgent[I, O]
	NewMessage(components.MessageRole, schema.Schema) *components.Message
}

// ToolAgent pipelines a single fixed tool between two model calls: the start
// agent turns the user input into the tool's input schema, the tool runs, and
// the end agent folds the tool result into the final response.
type ToolAgent[I schema.Schema, T schema.Schema, O schema.Schema] struct {
	start TypeableAgent[I, T]
	end   ToolEndAgent[I, O]
	// startCore/endCore are set when the pipeline runs against a model
	// client, nil when replaced through the setters.
	startCore *Agent[I, T]
	endCore   *Agent[I, O]
	tool      tools.AnonymousTool
}

// NewToolAgent returns a new ToolAgent instance
func NewToolAgent[I schema.Schema, T schema.Schema, O schema.Schema](options ...Option) *ToolAgent[I, T, O] {
	startCore := NewAgent[I, T](options...)
	endCore := NewAgent[I, O](options...)
	return &ToolAgent[I, T, O]{
		start:     startCore,
		end:       endCore,
		startCore: startCore,
		endCore:   endCore,
	}
}

func (t *ToolAgent[I, T, O]) SetTool(tool tools.AnonymousTool) *ToolAgent[I, T, O] {
	t.tool = tool
	return t
}

// SetStartAgent replaces the model call producing the tool input.
func (t *ToolAgent[I, T, O]) SetStartAgent(agent TypeableAgent[I, T]) {
	t.start = agent
	t.startCore = nil
}

// SetEndAgent replaces the model call producing the final response.
func (t *ToolAgent[I, T, O]) SetEndAgent(agent ToolEndAgent[I, O]) {
	t.end = agent
	t.endCore = nil
}

func (t *ToolAgent[I, T, O]) ResetMemory() {
	if t.startCore != nil {
		t.startCore.ResetMemory()
	}
	if t.endCore != nil {
		t.endCore.ResetMemory()
	}
}

// Run runs the chat agent with the given user input synchronously.
func (t *ToolAgent[I, T, O]) Run(ctx context.Context, userInput *I, output *O, modelResp *components.ModelResponse) error {
	toolInput := new(T)
	if err := t.start.Run(ctx, userInput, toolInput, modelResp); err != nil {
		return err
	}
	if t.tool != nil {
		toolResult, err := t.tool.RunAnonymous(ctx, toolInput)
		if err != nil {
			return err
		}
		outO, ok := toolResult.(schema.Schema)
		if !ok {
			return errors.New("invalid tool output schema")
		}
		t.end.NewMessage(components.ToolRole, outO)
	}
	return t.end.Run(ctx, userInput, output, modelResp)
}

// RunForChain runs the chat agent with the given user input for a chain.
func (t *ToolAgent[I, T, O]) RunForChain(ctx context.Context, userInput any, modelResp *components.ModelResponse) (any, error) {
	in, ok := userInput.(*I)
	if !ok {
		return nil, errors.New("invalid input schema")
	}
	out := new(O)
	if err := t.Run(ctx, in, out, modelResp); err != nil {
		return nil, err
	}
	return out, nil
}
