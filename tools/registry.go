package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/atomic"

	"github.com/bububa/react-agents/components/systemprompt"
	"github.com/bububa/react-agents/schema"
)

var (
	// ErrDuplicateTool is returned when registering a tool under a title that
	// is already taken.
	ErrDuplicateTool = errors.New("duplicate tool")
	// ErrUnknownTool is returned when looking up a title that was never
	// registered.
	ErrUnknownTool = errors.New("unknown tool")
)

// Registry maps tool titles to tools. Tools are immutable once registered.
// A populated registry may be shared read-only across conversations.
// threadsafe
type Registry struct {
	tools map[string]AnonymousTool
	// order preserves registration order for prompt rendering.
	order       []string
	invocations atomic.Int64
	misses      atomic.Int64
	mtx         *sync.RWMutex
}

var _ systemprompt.ContextProvider = (*Registry)(nil)

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]AnonymousTool),
		mtx:   new(sync.RWMutex),
	}
}

// Register adds a tool under its title. It fails with ErrDuplicateTool if the
// title is already present and with an error if the title is empty.
func (r *Registry) Register(tool AnonymousTool) error {
	title := tool.Title()
	if title == "" {
		return errors.New("tool title is required")
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if _, found := r.tools[title]; found {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, title)
	}
	r.tools[title] = tool
	r.order = append(r.order, title)
	return nil
}

// Lookup returns the tool registered under title or fails with
// ErrUnknownTool.
func (r *Registry) Lookup(title string) (AnonymousTool, error) {
	r.mtx.RLock()
	tool, found := r.tools[title]
	r.mtx.RUnlock()
	if !found {
		r.misses.Inc()
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, title)
	}
	return tool, nil
}

// Invoke looks up a tool and runs it with a plain text input, returning the
// stringified output. The single-string boundary is what a reasoning loop
// feeds back as an observation.
func (r *Registry) Invoke(ctx context.Context, title string, input string) (string, error) {
	tool, err := r.Lookup(title)
	if err != nil {
		return "", err
	}
	out, err := tool.RunAnonymous(ctx, schema.String(input))
	if err != nil {
		return "", err
	}
	r.invocations.Inc()
	if s, ok := out.(schema.Schema); ok {
		return schema.Stringify(s), nil
	}
	return fmt.Sprint(out), nil
}

// Titles returns tool titles in registration order.
func (r *Registry) Titles() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	titles := make([]string, len(r.order))
	copy(titles, r.order)
	return titles
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.tools)
}

// Invocations returns the number of successful tool runs dispatched through
// Invoke.
func (r *Registry) Invocations() int64 {
	return r.invocations.Load()
}

// Misses returns the number of failed lookups.
func (r *Registry) Misses() int64 {
	return r.misses.Load()
}

// Title implements systemprompt.ContextProvider so a registry can advertise
// its tools inside a generated system prompt.
func (r *Registry) Title() string {
	return "Available Tools"
}

// Info renders one line per tool in registration order.
func (r *Registry) Info() string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	lines := make([]string, 0, len(r.order))
	for _, title := range r.order {
		tool := r.tools[title]
		if desc := tool.Description(); desc != "" {
			lines = append(lines, fmt.Sprintf("- %s: %s", title, desc))
		} else {
			lines = append(lines, fmt.Sprintf("- %s", title))
		}
	}
	return strings.Join(lines, "\n")
}
