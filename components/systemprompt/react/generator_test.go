package react

import (
	"strings"
	"testing"
)

type staticProvider struct {
	title string
	info  string
}

func (p staticProvider) Title() string { return p.title }
func (p staticProvider) Info() string  { return p.info }

func TestGenerateContainsProtocol(t *testing.T) {
	g := New()
	prompt := g.Generate()
	for _, want := range []string{"# IDENTITY and PURPOSE", "# REASONING STEPS", "final_answer", "action_input"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGenerateContainsProviders(t *testing.T) {
	g := New(WithContextProviders(staticProvider{
		title: "Available Tools",
		info:  "- GetFounders: look up company founders",
	}))
	prompt := g.Generate()
	if !strings.Contains(prompt, "## Available Tools") {
		t.Fatalf("prompt missing provider section:\n%s", prompt)
	}
	if !strings.Contains(prompt, "GetFounders") {
		t.Errorf("prompt missing tool description:\n%s", prompt)
	}
}
