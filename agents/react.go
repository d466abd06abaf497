package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bububa/react-agents/components"
	reactprompt "github.com/bububa/react-agents/components/systemprompt/react"
	"github.com/bububa/react-agents/schema"
	"github.com/bububa/react-agents/tools"
)

// ErrStepLimitExceeded is returned when a reasoning loop runs out of steps
// before the model produces a final answer.
var ErrStepLimitExceeded = errors.New("step limit exceeded")

// Step is the structured output of one reasoning step. The model fills either
// FinalAnswer, or Action with ActionInput.
type Step struct {
	schema.Base
	// Thought is the model's reasoning about what to do next.
	Thought string `json:"thought,omitempty" jsonschema:"title=thought,description=Reasoning about what to do next."`
	// Action is the name of the tool to invoke.
	Action string `json:"action,omitempty" jsonschema:"title=action,description=The exact name of the tool to invoke. Leave empty when giving the final answer."`
	// ActionInput is the plain text input passed to the tool.
	ActionInput string `json:"action_input,omitempty" jsonschema:"title=action_input,description=Plain text input passed to the tool."`
	// FinalAnswer answers the goal and terminates the loop.
	FinalAnswer string `json:"final_answer,omitempty" jsonschema:"title=final_answer,description=The final answer to the goal. Leave empty when requesting a tool."`
}

func (s Step) String() string {
	return schema.Stringify(s)
}

// Trace is one executed (action, observation) pair in a run's scratchpad.
type Trace struct {
	Thought     string `json:"thought,omitempty"`
	Action      string `json:"action,omitempty"`
	ActionInput string `json:"action_input,omitempty"`
	Observation string `json:"observation,omitempty"`
}

// ReactAgent drives a reason-and-act loop: on each step the model sees the
// goal, the registered tool descriptions and the scratchpad of previous
// (action, observation) pairs, and either requests a tool or answers.
//
// A request for an unregistered tool is fed back as an observation so the
// model can correct itself rather than aborting the run.
type ReactAgent struct {
	name     string
	step     TypeableAgent[schema.String, Step]
	core     *Agent[schema.String, Step]
	registry *tools.Registry
	// memory is the cross-run conversation owned by this agent.
	memory   *components.Memory
	stepHook func(context.Context, *ReactAgent, *Step, string)
}

// NewReactAgent returns a reasoning loop over the given tool registry.
// Options configure the underlying step agent (client, model, temperature).
func NewReactAgent(registry *tools.Registry, options ...Option) *ReactAgent {
	core := new(Agent[schema.String, Step])
	for _, opt := range options {
		opt(&core.Config)
	}
	if core.memory == nil {
		// the step agent only needs the current exchange, the scratchpad
		// carries intra-run state
		core.memory = components.NewMemory(2)
	}
	if core.systemPromptGenerator == nil {
		core.systemPromptGenerator = reactprompt.New()
	}
	core.systemPromptGenerator.AddContextProviders(registry)
	core.initialMemory = components.NewMemory(0)
	core.initialMemory.Copy(core.memory)
	ret := &ReactAgent{
		name:     core.name,
		step:     core,
		core:     core,
		registry: registry,
		memory:   components.NewMemory(0),
	}
	return ret
}

func (a *ReactAgent) Name() string {
	return a.name
}

func (a *ReactAgent) SetName(name string) {
	a.name = name
}

// SetStepAgent replaces the model-facing step agent.
func (a *ReactAgent) SetStepAgent(step TypeableAgent[schema.String, Step]) {
	a.step = step
	a.core = nil
}

// SetStepHook registers a hook fired after every executed step with the
// parsed step and its observation.
func (a *ReactAgent) SetStepHook(fn func(context.Context, *ReactAgent, *Step, string)) {
	a.stepHook = fn
}

// Memory returns the conversation accumulated across runs.
func (a *ReactAgent) Memory() *components.Memory {
	return a.memory
}

// Registry returns the agent's tool registry.
func (a *ReactAgent) Registry() *tools.Registry {
	return a.registry
}

// Run pursues goal for at most maxSteps reasoning steps and returns the
// model's final answer. It fails with ErrStepLimitExceeded when the loop is
// exhausted, including for maxSteps <= 0. Model and network errors propagate
// unchanged. Usage across steps is accumulated into modelResp when non-nil.
// A failed run is removed from the conversation so later runs never replay
// an unanswered goal.
func (a *ReactAgent) Run(ctx context.Context, goal string, maxSteps int, modelResp *components.ModelResponse) (string, error) {
	if a.core != nil {
		a.core.ResetMemory()
	}
	runID := uuid.NewString()
	// snapshot prior turns before this run starts appending its own
	prior := a.memory.History()
	a.memory.SetTurnID(runID)
	a.memory.NewMessage(components.UserRole, schema.String(goal))
	scratch := make([]Trace, 0, max(maxSteps, 0))
	for i := 0; i < maxSteps; i++ {
		input := schema.String(renderStepInput(goal, prior, scratch))
		out := new(Step)
		stepResp := new(components.ModelResponse)
		if err := a.step.Run(ctx, &input, out, stepResp); err != nil {
			a.memory.DeleteTurn(runID)
			return "", err
		}
		if modelResp != nil {
			if modelResp.Usage == nil {
				modelResp.Usage = new(components.ModelUsage)
			}
			modelResp.Usage.Merge(stepResp.Usage)
		}
		if out.FinalAnswer != "" {
			a.memory.NewMessage(components.AssistantRole, schema.String(out.FinalAnswer))
			if fn := a.stepHook; fn != nil {
				fn(ctx, a, out, "")
			}
			return out.FinalAnswer, nil
		}
		observation := a.observe(ctx, out)
		a.memory.NewMessage(components.ToolRole, schema.String(observation))
		scratch = append(scratch, Trace{
			Thought:     out.Thought,
			Action:      out.Action,
			ActionInput: out.ActionInput,
			Observation: observation,
		})
		if fn := a.stepHook; fn != nil {
			fn(ctx, a, out, observation)
		}
	}
	a.memory.DeleteTurn(runID)
	return "", fmt.Errorf("%w: no final answer after %d steps", ErrStepLimitExceeded, maxSteps)
}

// observe dispatches the step's action and renders the observation fed back
// to the model. Unknown tools and tool failures become observations, they do
// not abort the run.
func (a *ReactAgent) observe(ctx context.Context, step *Step) string {
	if step.Action == "" {
		return "no tool requested and no final answer given; request a tool or fill final_answer"
	}
	result, err := a.registry.Invoke(ctx, step.Action, step.ActionInput)
	if err != nil {
		if errors.Is(err, tools.ErrUnknownTool) {
			return fmt.Sprintf("tool not found: %s. Available tools: %s", step.Action, strings.Join(a.registry.Titles(), ", "))
		}
		return fmt.Sprintf("tool %s failed: %s", step.Action, err.Error())
	}
	return result
}

// renderStepInput builds the user message for one reasoning step.
func renderStepInput(goal string, prior []components.Message, scratch []Trace) string {
	var sb strings.Builder
	if len(prior) > 0 {
		sb.WriteString("Conversation so far:\n")
		for _, msg := range prior {
			fmt.Fprintf(&sb, "%s: %s\n", msg.Role(), msg.StringifiedContent())
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Goal: %s\n", goal)
	if len(scratch) > 0 {
		sb.WriteString("\nPrevious steps:\n")
		for i, trace := range scratch {
			fmt.Fprintf(&sb, "%d. action: %s(%s)\n   observation: %s\n", i+1, trace.Action, trace.ActionInput, trace.Observation)
		}
	}
	sb.WriteString("\nDecide the next action or give the final answer.")
	return sb.String()
}
