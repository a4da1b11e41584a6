package commands

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/redlinehq/redline/internal/console"
	"github.com/redlinehq/redline/internal/editor"
	"github.com/redlinehq/redline/internal/printer"
)

// EditCmd runs the interactive editing session. It is the root action; the
// optional positional argument is the input file path.
type EditCmd struct {
	flags *Flags
}

// NewEditCmd creates the edit command.
func NewEditCmd(flags *Flags) *EditCmd {
	return &EditCmd{flags: flags}
}

// Run drives the editing workflow to completion.
func (cmd *EditCmd) Run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	p := printer.Default()
	p.Title("redline")

	workflow := editor.NewWorkflow(
		editor.NewTransformer(cmd.flags.Generator, log.With().Str("component", "transform").Logger()),
		console.NewPrompter(),
		p,
		log.With().Str("component", "workflow").Logger(),
		editor.Options{
			Path:          c.Args().First(),
			MaxAttempts:   cfg.Edit.MaxAttempts,
			MinExcerptLen: cfg.Edit.MinExcerptLen,
			StalePolicy:   cfg.Edit.StalePassage,
			Render:        console.DocumentRenderer(),
		},
	)

	if err := workflow.Run(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			p.Warnf("Aborted. Unsaved changes were discarded.")
			return nil
		}
		return err
	}
	return nil
}
