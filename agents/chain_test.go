package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/bububa/react-agents/components"
	"github.com/bububa/react-agents/schema"
)

type appendAgent struct {
	name   string
	suffix string
	usage  int
}

func (a appendAgent) Name() string { return a.name }

func (a appendAgent) RunForChain(_ context.Context, input any, modelResp *components.ModelResponse) (any, error) {
	in, ok := input.(*schema.String)
	if !ok {
		return nil, errors.New("invalid input schema")
	}
	out := schema.String(string(*in) + a.suffix)
	if modelResp != nil && a.usage > 0 {
		modelResp.Usage = &components.ModelUsage{OutputTokens: a.usage}
	}
	return &out, nil
}

func TestChainRun(t *testing.T) {
	chain := NewChain[schema.String, schema.String](
		appendAgent{name: "first", suffix: "-a", usage: 2},
		appendAgent{name: "second", suffix: "-b", usage: 3},
	)
	input := schema.String("start")
	var output schema.String
	respList, err := chain.Run(context.Background(), &input, &output)
	if err != nil {
		t.Fatal(err)
	}
	if string(output) != "start-a-b" {
		t.Errorf("unexpected chain output: %s", output)
	}
	if len(respList) != 2 {
		t.Errorf("expect one response per agent, got %d", len(respList))
	}
}

func TestChainRunForChainMergesUsage(t *testing.T) {
	chain := NewChain[schema.String, schema.String](
		appendAgent{name: "first", suffix: "-a", usage: 2},
		appendAgent{name: "second", suffix: "-b", usage: 3},
	)
	input := schema.String("start")
	resp := new(components.ModelResponse)
	out, err := chain.RunForChain(context.Background(), &input, resp)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(*out.(*schema.String)); got != "start-a-b" {
		t.Errorf("unexpected chain output: %s", got)
	}
	if resp.Usage == nil || resp.Usage.OutputTokens != 5 {
		t.Errorf("expect merged usage of 5 output tokens, got: %+v", resp.Usage)
	}
}

func TestChainInvalidInput(t *testing.T) {
	chain := NewChain[schema.String, schema.String](appendAgent{name: "only", suffix: "-a"})
	if _, err := chain.RunForChain(context.Background(), 42, nil); err == nil {
		t.Error("expect error for invalid input schema")
	}
}
