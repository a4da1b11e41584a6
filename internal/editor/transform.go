package editor

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/redlinehq/redline/internal/llm"
	"github.com/redlinehq/redline/pkg/tmpl"
)

// Transformer maps transformation operations onto the generation capability.
type Transformer struct {
	gen llm.Generator
	log zerolog.Logger
}

// NewTransformer creates a Transformer backed by the given generator.
func NewTransformer(gen llm.Generator, log zerolog.Logger) *Transformer {
	return &Transformer{gen: gen, log: log}
}

type promptData struct {
	Essay    string
	Passage  string
	Feedback string
}

// Transform runs one generation attempt for the given operation and returns
// the resulting candidate.
//
// Failure handling is asymmetric on purpose: OpFullRewrite propagates errors
// because there is no fallback document to show, while passage operations
// degrade to a candidate equal to the input passage so a transient generation
// failure never kills the workflow.
func (t *Transformer) Transform(ctx context.Context, op Op, passage, feedback string) (Candidate, error) {
	template, ok := promptTemplates[op]
	if !ok {
		return Candidate{}, fmt.Errorf("unknown operation %q", op)
	}

	prompt, err := tmpl.Render(template, promptData{
		Essay:    passage,
		Passage:  passage,
		Feedback: feedback,
	})
	if err != nil {
		return Candidate{}, fmt.Errorf("render %s prompt: %w", op, err)
	}

	proposed, err := t.gen.Generate(ctx, prompt)
	if err != nil {
		if op == OpFullRewrite {
			return Candidate{}, fmt.Errorf("generate full rewrite: %w", err)
		}

		t.log.Warn().Err(err).Str("op", string(op)).Msg("generation failed, falling back to input passage")
		return Candidate{
			Source:   passage,
			Proposed: passage,
			Op:       op,
			Feedback: feedback,
			Degraded: true,
		}, nil
	}

	return Candidate{
		Source:   passage,
		Proposed: proposed,
		Op:       op,
		Feedback: feedback,
	}, nil
}
