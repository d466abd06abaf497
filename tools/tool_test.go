package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/bububa/react-agents/schema"
)

type echoInput struct {
	schema.Base
	Text   string `json:"text"`
	Repeat int    `json:"repeat,omitempty"`
}

type echoOutput struct {
	schema.Base
	Text string `json:"text"`
}

type echoTool struct {
	Config
}

func (t *echoTool) Run(_ context.Context, input *echoInput) (*echoOutput, error) {
	n := input.Repeat
	if n <= 0 {
		n = 1
	}
	return &echoOutput{Text: strings.Repeat(input.Text, n)}, nil
}

func newEchoTool() *echoTool {
	ret := new(echoTool)
	ret.SetTitle("Echo")
	return ret
}

func TestAnonymizeTypedInput(t *testing.T) {
	tool := Anonymize[echoInput, echoOutput](newEchoTool())
	out, err := tool.RunAnonymous(context.Background(), &echoInput{Text: "ab", Repeat: 2})
	if err != nil {
		t.Fatal(err)
	}
	if got := out.(*echoOutput).Text; got != "abab" {
		t.Errorf("unexpected output: %s", got)
	}
}

func TestAnonymizeJSONInput(t *testing.T) {
	tool := Anonymize[echoInput, echoOutput](newEchoTool())
	out, err := tool.RunAnonymous(context.Background(), schema.String(`{"text":"hi","repeat":3}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := out.(*echoOutput).Text; got != "hihihi" {
		t.Errorf("unexpected output: %s", got)
	}
}

func TestAnonymizeRepairsBrokenJSON(t *testing.T) {
	tool := Anonymize[echoInput, echoOutput](newEchoTool())
	// trailing comma and single quotes, as models tend to emit
	out, err := tool.RunAnonymous(context.Background(), `{'text': 'hi',}`)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.(*echoOutput).Text; got != "hi" {
		t.Errorf("unexpected output: %s", got)
	}
}

func TestAnonymizeStringSchema(t *testing.T) {
	tool := NewFunc("Upper", "", func(_ context.Context, in string) (string, error) {
		return strings.ToUpper(in), nil
	})
	out, err := tool.RunAnonymous(context.Background(), schema.String("go"))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(out.(schema.String)); got != "GO" {
		t.Errorf("unexpected output: %s", got)
	}
}
