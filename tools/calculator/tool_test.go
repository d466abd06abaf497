package calculator

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/bububa/react-agents/tools"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	tool := New()
	ret, err := tool.Run(ctx, NewInput("2+2", nil))
	if err != nil {
		t.Fatal(err)
	}
	value, ok := ret.Result.(float64)
	if !ok {
		t.Fatalf("expecting float64, got %T", ret.Result)
	}
	if int(value) != 4 {
		t.Errorf("expecting 4, but got %.2f", value)
	}
}

func TestRunWithConsts(t *testing.T) {
	ctx := context.Background()
	tool := New()
	ret, err := tool.Run(ctx, NewInput("2 * pi", nil))
	if err != nil {
		t.Fatal(err)
	}
	value, ok := ret.Result.(float64)
	if !ok {
		t.Fatalf("expecting float64, got %T", ret.Result)
	}
	if math.Abs(value-2*math.Pi) > 1e-9 {
		t.Errorf("expecting 2*pi, but got %f", value)
	}
}

func TestRunWithParams(t *testing.T) {
	ctx := context.Background()
	tool := New()
	ret, err := tool.Run(ctx, NewInput("x * y", map[string]interface{}{"x": 3.0, "y": 4.0}))
	if err != nil {
		t.Fatal(err)
	}
	if value, _ := ret.Result.(float64); int(value) != 12 {
		t.Errorf("expecting 12, got %v", ret.Result)
	}
}

func TestRunInvalidExpression(t *testing.T) {
	ctx := context.Background()
	tool := New()
	if _, err := tool.Run(ctx, NewInput("2 +* 2", nil)); err == nil {
		t.Error("expect parse error")
	}
}

func TestAnonymousDispatch(t *testing.T) {
	ctx := context.Background()
	reg := tools.NewRegistry()
	if err := reg.Register(tools.Anonymize[Input, Output](New())); err != nil {
		t.Fatal(err)
	}
	out, err := reg.Invoke(ctx, "CalculatorTool", `{"expression":"6*7"}`)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Output
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatal(err)
	}
	if value, _ := decoded.Result.(float64); int(value) != 42 {
		t.Errorf("expecting 42, got %v", decoded.Result)
	}
}
