package editor

// Prompt templates rendered with pkg/tmpl. Each template receives the fields
// it names: Essay for the full rewrite, Passage for passage operations, and
// Passage plus Feedback for refinement.

const fullRewritePrompt = `You are an academic writing assistant. The user has uploaded an essay.
Rewrite the entire essay for clarity, logical flow, grammar, and readability,
while preserving its original meaning and philosophical depth.
Do not shorten unless absolutely necessary. Return only the rewritten essay text.

Essay to rewrite:
{{.Essay}}`

const rewritePrompt = `You are an academic editor. Rewrite the following passage.
Keep the meaning intact, but improve grammar, clarity, structure,
and logical flow. Maintain the same academic tone as the original essay.
Return only the rewritten passage.

Passage to rewrite:
{{.Passage}}`

const rephrasePrompt = `You are a stylistic writing assistant. Rephrase the following passage
so that it has a different style and sentence structure,
but retains the same meaning. Keep the academic tone consistent
with a philosophy essay. Return only the rephrased passage.

Passage to rephrase:
{{.Passage}}`

const expandPrompt = `You are a philosophy essay writer. Expand the following passage
by adding new original content that deepens the discussion,
provides examples, or adds reasoning. Keep the academic and
philosophical tone consistent with the rest of the essay.
Do not repeat sentences verbatim. Return only the expanded passage.

Passage to expand:
{{.Passage}}`

const refinePrompt = `You are an academic editor. The user rejected the following passage and provided feedback.
Please revise the passage according to their feedback while maintaining academic quality.

Original passage:
{{.Passage}}

User feedback: {{.Feedback}}

Provide only the revised passage:`

var promptTemplates = map[Op]string{
	OpFullRewrite: fullRewritePrompt,
	OpRewrite:     rewritePrompt,
	OpRephrase:    rephrasePrompt,
	OpExpand:      expandPrompt,
	OpRefine:      refinePrompt,
}
