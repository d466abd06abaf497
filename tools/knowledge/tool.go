package knowledge

import (
	"context"
	"errors"

	"github.com/philippgille/chromem-go"

	"github.com/bububa/react-agents/schema"
	"github.com/bububa/react-agents/tools"
)

// Input schema for querying the knowledge base.
type Input struct {
	schema.Base
	// Query is the natural language query to search the knowledge base with.
	Query string `json:"query" jsonschema:"title=query,description=Natural language query to search the knowledge base with." validate:"required"`
	// TopK is the maximum number of entries to return.
	TopK int `json:"top_k,omitempty" jsonschema:"title=top_k,description=Maximum number of entries to return."`
}

func NewInput(query string, topK int) *Input {
	return &Input{
		Query: query,
		TopK:  topK,
	}
}

// Result is a single knowledge base entry matched by a query.
type Result struct {
	// ID identifies the entry.
	ID string `json:"id" jsonschema:"title=id,description=Identifier of the entry."`
	// Content is the entry text.
	Content string `json:"content" jsonschema:"title=content,description=The entry text."`
	// Score is the similarity between the query and the entry.
	Score float64 `json:"score" jsonschema:"title=score,description=Similarity between the query and the entry."`
}

// Output schema for the output of the knowledge tool.
type Output struct {
	schema.Base
	// Results is the list of matched entries, most similar first.
	Results []Result `json:"results,omitempty" jsonschema:"title=results,description=List of matched entries."`
}

type Config struct {
	tools.Config
	collectionName string
	embeddingFunc  chromem.EmbeddingFunc
	topK           int
}

// Tool answers queries against an embedded vector store. Entries are added
// with Add and retrieved by similarity at Run time.
type Tool struct {
	Config
	collection *chromem.Collection
}

var _ tools.Tool[Input, Output] = (*Tool)(nil)

func New(opts ...Option) (*Tool, error) {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("KnowledgeTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Search the knowledge base and return the most relevant entries.")
	}
	if ret.collectionName == "" {
		ret.collectionName = "knowledge"
	}
	if ret.topK == 0 {
		ret.topK = 5
	}
	db := chromem.NewDB()
	collection, err := db.GetOrCreateCollection(ret.collectionName, nil, ret.embeddingFunc)
	if err != nil {
		return nil, err
	}
	ret.collection = collection
	return ret, nil
}

// Add stores an entry in the knowledge base.
func (t *Tool) Add(ctx context.Context, id string, content string, meta map[string]string) error {
	return t.collection.AddDocument(ctx, chromem.Document{
		ID:       id,
		Content:  content,
		Metadata: meta,
	})
}

// Count returns the number of stored entries.
func (t *Tool) Count() int {
	return t.collection.Count()
}

// Run searches the knowledge base with the given query.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	if input.Query == "" {
		return nil, errors.New("query is required")
	}
	topK := input.TopK
	if topK <= 0 {
		topK = t.topK
	}
	if count := t.collection.Count(); count == 0 {
		return new(Output), nil
	} else if topK > count {
		topK = count
	}
	results, err := t.collection.Query(ctx, input.Query, topK, nil, nil)
	if err != nil {
		return nil, err
	}
	out := &Output{
		Results: make([]Result, 0, len(results)),
	}
	for _, res := range results {
		out.Results = append(out.Results, Result{
			ID:      res.ID,
			Content: res.Content,
			Score:   float64(res.Similarity),
		})
	}
	return out, nil
}
