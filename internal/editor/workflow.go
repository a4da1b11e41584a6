package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/redlinehq/redline/internal/core/document"
	"github.com/redlinehq/redline/internal/core/ingest"
	"github.com/redlinehq/redline/internal/printer"
)

// Prompter collects user input for each interactive step. The console
// implementation is backed by huh forms; tests use a scripted one.
type Prompter interface {
	// Path asks for the input file path.
	Path() (string, error)
	// Menu asks for a top-level menu choice.
	Menu() (MenuChoice, error)
	// Selector asks for a passage selector (line range or literal excerpt).
	Selector() (string, error)
	// Decision asks whether to accept the proposed revision.
	Decision() (Decision, error)
	// Feedback asks what to change about a rejected revision.
	Feedback() (string, error)
}

// Options configures a Workflow.
type Options struct {
	// Path is the input file. When empty the user is prompted.
	Path string
	// OutDir is where the edited document is written. Empty means the
	// invocation directory.
	OutDir string
	// MaxAttempts bounds the reject/refine loop per passage; 0 is unlimited.
	MaxAttempts int
	// MinExcerptLen is the literal selector threshold; 0 uses the default.
	MinExcerptLen int
	// StalePolicy is the Document commit policy for vanished passages.
	StalePolicy document.StalePolicy
	// Render converts document text for display; nil means identity.
	Render func(string) string
	// Extract ingests the input file; nil means ingest.ExtractText.
	Extract func(path string) (string, error)
}

// state identifies a workflow step. Transitions are owned by the step
// methods; Run only dispatches until stateDone.
type state int

const (
	stateLoad state = iota
	statePropose
	stateMenu
	stateSelect
	stateTransform
	stateReview
	stateFeedback
	stateCommit
	stateShow
	stateSave
	stateDone
)

// session is the mutable editing context threaded through the state machine:
// the document plus the in-flight selection/candidate pair.
type session struct {
	doc       *document.Document
	selection document.Selection
	candidate Candidate
	feedback  string
	choice    MenuChoice
	refining  bool
	attempts  int
}

// reset clears the in-flight passage state when an edit cycle concludes.
func (s *session) reset() {
	s.selection = document.Selection{}
	s.candidate = Candidate{}
	s.feedback = ""
	s.refining = false
	s.attempts = 0
}

// Workflow drives the interactive editing loop.
type Workflow struct {
	tr      *Transformer
	prompt  Prompter
	printer *printer.Printer
	log     zerolog.Logger
	opts    Options

	sess session
}

// NewWorkflow wires a Workflow from its collaborators.
func NewWorkflow(tr *Transformer, prompt Prompter, p *printer.Printer, log zerolog.Logger, opts Options) *Workflow {
	if opts.Render == nil {
		opts.Render = func(s string) string { return s }
	}
	if opts.Extract == nil {
		opts.Extract = ingest.ExtractText
	}
	return &Workflow{tr: tr, prompt: prompt, printer: p, log: log, opts: opts}
}

// Run executes the state machine from load to save. Errors returned here are
// fatal: ingestion failures, full-rewrite generation failures, and aborted
// prompts.
func (w *Workflow) Run(ctx context.Context) error {
	for st := stateLoad; st != stateDone; {
		next, err := w.step(ctx, st)
		if err != nil {
			return err
		}
		st = next
	}
	return nil
}

func (w *Workflow) step(ctx context.Context, st state) (state, error) {
	switch st {
	case stateLoad:
		return w.stepLoad()
	case statePropose:
		return w.stepPropose(ctx)
	case stateMenu:
		return w.stepMenu()
	case stateSelect:
		return w.stepSelect()
	case stateTransform:
		return w.stepTransform(ctx)
	case stateReview:
		return w.stepReview()
	case stateFeedback:
		return w.stepFeedback()
	case stateCommit:
		return w.stepCommit()
	case stateShow:
		return w.stepShow()
	case stateSave:
		return w.stepSave()
	default:
		return stateDone, fmt.Errorf("workflow reached unknown state %d", st)
	}
}

func (w *Workflow) stepLoad() (state, error) {
	path := w.opts.Path
	if path == "" {
		var err error
		if path, err = w.prompt.Path(); err != nil {
			return stateDone, err
		}
	}
	path = strings.TrimSpace(path)

	text, err := w.opts.Extract(path)
	if err != nil {
		return stateDone, fmt.Errorf("load document: %w", err)
	}

	doc, err := document.Load(text, filepath.Base(path), document.WithStalePolicy(w.opts.StalePolicy))
	if err != nil {
		return stateDone, fmt.Errorf("load document: %w", err)
	}
	w.sess.doc = doc

	w.log.Info().Str("file", doc.Name()).Int("chars", len(text)).Msg("document loaded")
	w.printer.Successf("Loaded %s (%d characters)", doc.Name(), len(text))

	return statePropose, nil
}

func (w *Workflow) stepPropose(ctx context.Context) (state, error) {
	w.printer.Mutedf("Generating a suggested rewrite of your document...")

	cand, err := w.tr.Transform(ctx, OpFullRewrite, w.sess.doc.Original(), "")
	if err != nil {
		return stateDone, err
	}

	// Display only. The proposal never touches the working text.
	w.printer.Panel("SUGGESTED REWRITE", cand.Proposed)
	return stateMenu, nil
}

func (w *Workflow) stepMenu() (state, error) {
	choice, err := w.prompt.Menu()
	if err != nil {
		return stateDone, err
	}
	w.sess.choice = choice

	switch choice {
	case MenuRewrite, MenuRephrase, MenuExpand:
		return stateSelect, nil
	case MenuShow:
		return stateShow, nil
	default:
		// Save also catches anything unrecognized.
		return stateSave, nil
	}
}

func (w *Workflow) stepSelect() (state, error) {
	lines := w.sess.doc.Lines()
	w.printer.Printf("\nThe document has %d lines. First few lines for reference:", len(lines))
	w.printer.NumberedLines(lines, 5, 80)
	w.printer.Mutedf("Select a passage: paste the exact text, or give line numbers like 5-8.")

	for {
		selector, err := w.prompt.Selector()
		if err != nil {
			return stateDone, err
		}

		sel, err := w.sess.doc.Resolve(strings.TrimSpace(selector), w.opts.MinExcerptLen)
		if err != nil {
			w.printer.Errorf("%v", err)
			continue
		}

		w.sess.reset()
		w.sess.selection = sel
		w.printer.Panel("SELECTED PASSAGE", sel.Text)
		return stateTransform, nil
	}
}

// currentOp returns the operation for the next transformation attempt. After
// the first rejection every retry goes through refine, regardless of which
// operation the user originally chose.
func (w *Workflow) currentOp() Op {
	if w.sess.refining {
		return OpRefine
	}
	if op, ok := w.sess.choice.op(); ok {
		return op
	}
	return OpRewrite
}

func (w *Workflow) stepTransform(ctx context.Context) (state, error) {
	op := w.currentOp()
	w.printer.Mutedf("Processing your request...")

	cand, err := w.tr.Transform(ctx, op, w.sess.selection.Text, w.sess.feedback)
	if err != nil {
		return stateDone, err
	}
	w.sess.candidate = cand
	w.sess.feedback = ""

	if cand.Degraded {
		w.printer.Errorf("Generation failed; showing the passage unchanged.")
	}
	return stateReview, nil
}

func (w *Workflow) stepReview() (state, error) {
	w.printer.Panel("ORIGINAL PASSAGE", w.sess.selection.Text)
	w.printer.Panel("SUGGESTED REVISION", w.sess.candidate.Proposed)

	decision, err := w.prompt.Decision()
	if err != nil {
		return stateDone, err
	}

	if decision == DecisionAccept {
		return stateCommit, nil
	}

	w.sess.attempts++
	if w.opts.MaxAttempts > 0 && w.sess.attempts >= w.opts.MaxAttempts {
		w.printer.Warnf("Giving up on this passage after %d attempts.", w.sess.attempts)
		w.log.Info().Int("attempts", w.sess.attempts).Msg("passage abandoned at attempt ceiling")
		w.sess.reset()
		return stateMenu, nil
	}
	return stateFeedback, nil
}

func (w *Workflow) stepFeedback() (state, error) {
	feedback, err := w.prompt.Feedback()
	if err != nil {
		return stateDone, err
	}

	w.sess.feedback = feedback
	w.sess.refining = true
	return stateTransform, nil
}

func (w *Workflow) stepCommit() (state, error) {
	err := w.sess.doc.Commit(w.sess.selection.Text, w.sess.candidate.Proposed)
	if err != nil {
		if errors.Is(err, document.ErrStalePassage) {
			w.printer.Warnf("The passage changed under you; nothing was replaced.")
			w.sess.reset()
			return stateMenu, nil
		}
		return stateDone, err
	}

	w.printer.Successf("Passage updated.")
	w.sess.reset()
	return stateMenu, nil
}

func (w *Workflow) stepShow() (state, error) {
	w.printer.Panel("CURRENT DOCUMENT", w.opts.Render(w.sess.doc.Snapshot()))
	return stateMenu, nil
}

func (w *Workflow) stepSave() (state, error) {
	if !w.sess.doc.Dirty() {
		w.printer.Printf("No changes made to save.")
		return stateDone, nil
	}

	name := w.sess.doc.Name()
	base := strings.TrimSuffix(name, filepath.Ext(name))
	out := filepath.Join(w.opts.OutDir, base+"_edited.txt")

	if err := os.WriteFile(out, []byte(w.sess.doc.Snapshot()), 0o644); err != nil {
		return stateDone, fmt.Errorf("save document: %w", err)
	}

	w.log.Info().Str("file", out).Msg("document saved")
	w.printer.Successf("Saved as %s", out)
	return stateDone, nil
}
