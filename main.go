package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/redlinehq/redline/internal/commands"
	"github.com/redlinehq/redline/internal/core/config"
	"github.com/redlinehq/redline/internal/core/styles"
	"github.com/redlinehq/redline/internal/llm/gemini"
	"github.com/redlinehq/redline/pkg/logutils"
)

// apiKeyEnv is the credential required by the generation capability.
const apiKeyEnv = "GOOGLE_API_KEY"

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set so
	// version remains "dev". Fall back to runtime/debug.BuildInfo.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "redline",
		Usage:     "Interactive AI-assisted document editing",
		UsageText: "redline [global options] [file]",
		Description: `redline loads a document (.txt, .docx, or .pdf), proposes a full rewrite,
and then lets you iteratively select passages, request rewrites, rephrasings,
or expansions, and accept or reject each suggestion with feedback.

Accepted edits are committed into a working copy; saving writes
<name>_edited.txt next to wherever you invoked redline.

Requires the ` + apiKeyEnv + ` environment variable (a .env file is honored).`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("REDLINE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("REDLINE_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("REDLINE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "model",
				Aliases:     []string{"m"},
				Usage:       "generation model (overrides config)",
				Sources:     cli.EnvVars("REDLINE_MODEL"),
				Destination: &flags.Model,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// A .env in the invocation directory is honored but optional.
			_ = godotenv.Load()

			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Validation ensures the theme name is valid.
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			apiKey := os.Getenv(apiKeyEnv)
			if apiKey == "" {
				return ctx, fmt.Errorf("%s is not set; export it or add it to a .env file", apiKeyEnv)
			}

			model := cfg.Generation.Model
			if flags.Model != "" {
				model = flags.Model
			}
			flags.Generator = gemini.NewClient(apiKey, model, cfg.Generation.Temperature)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app.Action = commands.NewEditCmd(flags).Run

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
