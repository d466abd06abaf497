package agents

import (
	"context"
	"errors"

	"github.com/bububa/react-agents/components"
	"github.com/bububa/react-agents/schema"
)

// Chain runs agents sequentially, feeding each agent's output into the next
// agent's input.
type Chain[I schema.Schema, O schema.Schema] struct {
	agents []ChainableAgent
}

// NewChain returns a new Chain instance
func NewChain[I schema.Schema, O schema.Schema](agents ...ChainableAgent) *Chain[I, O] {
	return &Chain[I, O]{
		agents: agents,
	}
}

// Run runs the chained agents with the given user input synchronously.
func (c *Chain[I, O]) Run(ctx context.Context, input *I, output *O) ([]components.ModelResponse, error) {
	l := len(c.agents)
	respList := make([]components.ModelResponse, 0, l)
	var (
		in  any = input
		out any
	)
	for _, agent := range c.agents {
		resp := new(components.ModelResponse)
		ret, err := agent.RunForChain(ctx, in, resp)
		if err != nil {
			return respList, err
		}
		in = ret
		out = ret
		respList = append(respList, *resp)
	}
	outO, ok := out.(*O)
	if !ok {
		return respList, errors.New("invalid output schema")
	}
	*output = *outO
	return respList, nil
}

// RunForChain runs the chain itself as a chainable agent.
func (c *Chain[I, O]) RunForChain(ctx context.Context, input any, modelResp *components.ModelResponse) (any, error) {
	in, ok := input.(*I)
	if !ok {
		return nil, errors.New("invalid input schema")
	}
	out := new(O)
	respList, err := c.Run(ctx, in, out)
	if err != nil {
		return nil, err
	}
	if modelResp != nil {
		for _, v := range respList {
			if v.Usage == nil {
				continue
			}
			if modelResp.Usage == nil {
				modelResp.Usage = new(components.ModelUsage)
			}
			modelResp.Usage.Merge(v.Usage)
		}
	}
	return out, nil
}
