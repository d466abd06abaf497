package react

import (
	"fmt"
	"strings"

	"github.com/bububa/react-agents/components/systemprompt"
)

// Generator renders the system prompt for a reason-and-act loop. Each model
// call sees the agent identity, the loop protocol and, via context providers,
// the currently registered tools.
type Generator struct {
	systemprompt.BaseGenerator
	background []string
	steps      []string
}

var _ systemprompt.Generator = (*Generator)(nil)

// New returns a new ReAct system prompt Generator
func New(options ...Option) *Generator {
	ret := new(Generator)
	for _, opt := range options {
		opt(ret)
	}
	if len(ret.background) == 0 {
		ret.background = []string{"- You are an assistant that solves a goal step by step using the available tools."}
	}
	if len(ret.steps) == 0 {
		ret.steps = []string{
			"- Think about what single piece of information is still missing to answer the goal.",
			"- If a tool can provide it, request that tool by name with a plain text input.",
			"- Read the observations from previous steps before requesting another tool call.",
			"- Once the goal can be answered from the observations, stop calling tools and answer.",
		}
	}
	return ret
}

func (g *Generator) Generate() string {
	var promptParts []string
	promptParts = append(promptParts, "# IDENTITY and PURPOSE")
	promptParts = append(promptParts, g.background...)
	promptParts = append(promptParts, "", "# REASONING STEPS")
	promptParts = append(promptParts, g.steps...)
	promptParts = append(promptParts, "",
		"# OUTPUT INSTRUCTIONS",
		"- Always respond using the proper JSON schema.",
		"- Fill either final_answer, or action together with action_input. Never both.",
		"- action must be the exact name of one of the available tools.",
		"- action_input is the plain text input passed to the tool.",
	)
	if providers := g.ContextProviders(); len(providers) > 0 {
		promptParts = append(promptParts, "", "# EXTRA INFORMATION AND CONTEXT")
		for _, provider := range providers {
			if info := provider.Info(); info != "" {
				promptParts = append(promptParts, fmt.Sprintf("## %s", provider.Title()))
				promptParts = append(promptParts, info)
				promptParts = append(promptParts, "")
			}
		}
	}
	return strings.TrimSpace(strings.Join(promptParts, "\n"))
}
