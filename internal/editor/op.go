// Package editor implements the interactive editing workflow: propose a full
// rewrite, then loop through passage selection, transformation, and review
// until the user saves.
package editor

// Op identifies a transformation operation.
type Op string

const (
	// OpFullRewrite rewrites the entire original document. Generation
	// failures on this path are fatal; there is no fallback document.
	OpFullRewrite Op = "full-rewrite"
	// OpRewrite improves grammar, clarity, and structure of a passage.
	OpRewrite Op = "rewrite"
	// OpRephrase restates a passage with different style and structure.
	OpRephrase Op = "rephrase"
	// OpExpand adds original supporting content to a passage.
	OpExpand Op = "expand"
	// OpRefine revises a rejected passage according to user feedback.
	OpRefine Op = "refine"
)

// Candidate is a proposed replacement for a selected passage.
type Candidate struct {
	// Source is the passage the candidate replaces.
	Source string
	// Proposed is the generated replacement text.
	Proposed string
	// Op is the operation that produced the candidate.
	Op Op
	// Feedback is the user critique that parameterized a refine attempt.
	Feedback string
	// Degraded marks a candidate produced by the failure fallback: the
	// generation call failed and Proposed equals Source.
	Degraded bool
}

// Decision is the outcome of reviewing a candidate.
type Decision int

const (
	DecisionReject Decision = iota
	DecisionAccept
)

// MenuChoice is a top-level menu selection.
type MenuChoice string

const (
	MenuRewrite  MenuChoice = "rewrite"
	MenuRephrase MenuChoice = "rephrase"
	MenuExpand   MenuChoice = "expand"
	MenuShow     MenuChoice = "show"
	MenuSave     MenuChoice = "save"
)

// op maps a menu choice to the transformation it requests. Unrecognized
// choices fall through to save, though the prompt layer prevents them.
func (m MenuChoice) op() (Op, bool) {
	switch m {
	case MenuRewrite:
		return OpRewrite, true
	case MenuRephrase:
		return OpRephrase, true
	case MenuExpand:
		return OpExpand, true
	default:
		return "", false
	}
}
