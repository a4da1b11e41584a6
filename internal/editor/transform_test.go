package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redlinehq/redline/internal/llm"
)

func TestTransform_RendersPrompt(t *testing.T) {
	var gotPrompt string
	gen := llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "improved text", nil
	})

	tr := NewTransformer(gen, zerolog.Nop())

	cand, err := tr.Transform(context.Background(), OpRewrite, "the passage", "")
	require.NoError(t, err)

	assert.Equal(t, "the passage", cand.Source)
	assert.Equal(t, "improved text", cand.Proposed)
	assert.Equal(t, OpRewrite, cand.Op)
	assert.False(t, cand.Degraded)
	assert.Contains(t, gotPrompt, "Passage to rewrite:\nthe passage")
}

func TestTransform_RefineCarriesFeedback(t *testing.T) {
	var gotPrompt string
	gen := llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "revised", nil
	})

	tr := NewTransformer(gen, zerolog.Nop())

	cand, err := tr.Transform(context.Background(), OpRefine, "the passage", "make it shorter")
	require.NoError(t, err)

	assert.Equal(t, "make it shorter", cand.Feedback)
	assert.Contains(t, gotPrompt, "User feedback: make it shorter")
	assert.Contains(t, gotPrompt, "Original passage:\nthe passage")
}

func TestTransform_PassageOpsDegradeOnFailure(t *testing.T) {
	gen := llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", llm.ErrUnavailable
	})

	tr := NewTransformer(gen, zerolog.Nop())

	for _, op := range []Op{OpRewrite, OpRephrase, OpExpand, OpRefine} {
		t.Run(string(op), func(t *testing.T) {
			cand, err := tr.Transform(context.Background(), op, "the passage", "fb")
			require.NoError(t, err, "passage transforms never propagate generation errors")

			assert.Equal(t, "the passage", cand.Proposed, "fallback returns the input unchanged")
			assert.True(t, cand.Degraded)
		})
	}
}

func TestTransform_FullRewriteFailureIsFatal(t *testing.T) {
	gen := llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", llm.ErrUnavailable
	})

	tr := NewTransformer(gen, zerolog.Nop())

	_, err := tr.Transform(context.Background(), OpFullRewrite, "the essay", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrUnavailable)
}

func TestTransform_UnknownOp(t *testing.T) {
	tr := NewTransformer(llm.GeneratorFunc(func(context.Context, string) (string, error) {
		return "", errors.New("unreachable")
	}), zerolog.Nop())

	_, err := tr.Transform(context.Background(), Op("bogus"), "p", "")
	require.Error(t, err)
}
