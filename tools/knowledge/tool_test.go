package knowledge

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/philippgille/chromem-go"
)

// fakeEmbedding maps texts onto a tiny deterministic vector space so tests
// stay offline.
func fakeEmbedding(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, 3)
	lower := strings.ToLower(text)
	if strings.Contains(lower, "google") {
		vec[0] = 1
	}
	if strings.Contains(lower, "apple") {
		vec[1] = 1
	}
	if strings.Contains(lower, "founder") || strings.Contains(lower, "founded") {
		vec[2] = 1
	}
	// chromem expects normalized vectors for cosine similarity
	var norm float32
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		vec[0] = 1
		norm = 1
	}
	norm = float32(1 / math.Sqrt(float64(norm)))
	for i := range vec {
		vec[i] *= norm
	}
	return vec, nil
}

func newTestTool(t *testing.T) *Tool {
	t.Helper()
	tool, err := New(WithEmbeddingFunc(chromem.EmbeddingFunc(fakeEmbedding)), WithTopK(2))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	entries := map[string]string{
		"google": "Google was founded by Larry Page and Sergey Brin.",
		"apple":  "Apple was founded by Steve Jobs, Steve Wozniak and Ronald Wayne.",
	}
	for id, content := range entries {
		if err := tool.Add(ctx, id, content, nil); err != nil {
			t.Fatal(err)
		}
	}
	return tool
}

func TestRun(t *testing.T) {
	tool := newTestTool(t)
	out, err := tool.Run(context.Background(), NewInput("who founded google", 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Results) != 1 {
		t.Fatalf("expect 1 result, got %d", len(out.Results))
	}
	if !strings.Contains(out.Results[0].Content, "Larry Page") {
		t.Errorf("unexpected top result: %+v", out.Results[0])
	}
}

func TestRunEmptyCollection(t *testing.T) {
	tool, err := New(WithEmbeddingFunc(chromem.EmbeddingFunc(fakeEmbedding)))
	if err != nil {
		t.Fatal(err)
	}
	out, err := tool.Run(context.Background(), NewInput("anything", 3))
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Results) != 0 {
		t.Errorf("expect no results, got %d", len(out.Results))
	}
}

func TestRunMissingQuery(t *testing.T) {
	tool := newTestTool(t)
	if _, err := tool.Run(context.Background(), new(Input)); err == nil {
		t.Error("expect error for empty query")
	}
}

func TestCount(t *testing.T) {
	tool := newTestTool(t)
	if got := tool.Count(); got != 2 {
		t.Errorf("expect 2 entries, got %d", got)
	}
}
