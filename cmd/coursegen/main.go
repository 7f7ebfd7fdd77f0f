package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	cli "github.com/urfave/cli/v3"

	"github.com/northwind-training/coursegen/internal/config"
	"github.com/northwind-training/coursegen/internal/content"
	"github.com/northwind-training/coursegen/internal/docs"
	"github.com/northwind-training/coursegen/internal/inspect"
	"github.com/northwind-training/coursegen/internal/runner"
	"github.com/northwind-training/coursegen/internal/scaffold"
	"github.com/northwind-training/coursegen/internal/state"
	"github.com/northwind-training/coursegen/internal/ux"
	"github.com/northwind-training/coursegen/internal/verify"
)

func main() {
	app := &cli.Command{
		Name:        "coursegen",
		Usage:       "Generate the SharePoint Online administration course decks and packs",
		Description: "Run 'coursegen docs' for documentation on configuration, decks, packs, and outputs.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Path to course.yaml (default: search upward from cwd)"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Write debug logs to stderr"},
		},
		Commands: []*cli.Command{
			initCmd(),
			buildCmd(),
			listCmd(),
			statusCmd(),
			verifyCmd(),
			inspectCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Build decks, handouts, and packs",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "only", Usage: "Build only these deck keys, participant IDs, or the trainer ID"},
			&cli.BoolFlag{Name: "no-packs", Usage: "Skip participant and trainer packs"},
			&cli.BoolFlag{Name: "no-decks", Usage: "Skip decks and handouts"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print the job plan without writing files"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd)

			jobs, err := runner.Plan(cfg, runner.Selection{
				Only:    cmd.StringSlice("only"),
				NoDecks: cmd.Bool("no-decks"),
				NoPacks: cmd.Bool("no-packs"),
			}, logger)
			if err != nil {
				return err
			}

			r := &runner.Runner{
				Jobs:       jobs,
				OutDir:     cfg.OutDir(),
				Dispatcher: runner.DefaultDispatcher{},
				Logger:     logger,
			}

			if cmd.Bool("dry-run") {
				r.DryRunPrint()
				return nil
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			return r.Run(ctx)
		},
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the course decks",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			table := ux.NewTable(os.Stdout, []string{"ID", "Label", "Title", "Slides", "File"})
			for _, d := range content.All() {
				table.Append([]string{d.ID, d.Label, d.Title, strconv.Itoa(len(d.Slides)), d.FileName})
			}
			fmt.Println()
			table.Render()
			fmt.Println()
			return nil
		},
	}
}

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the last build",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			outDir := cfg.OutDir()

			st, err := state.Load(outDir)
			if err != nil {
				return fmt.Errorf("loading manifest: %w", err)
			}
			timing, err := state.LoadTiming(outDir)
			if err != nil {
				return fmt.Errorf("loading timing: %w", err)
			}

			ux.RenderStatus(os.Stdout, st, timing, outDir)
			return nil
		},
	}
}

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Check generated files against the manifest",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			st, problems, err := verify.Verify(cfg.OutDir())
			if err != nil {
				return err
			}
			if len(problems) == 0 {
				fmt.Printf("%s✓%s %d files match the manifest\n", ux.Green, ux.Reset, len(st.Artifacts))
				return nil
			}
			for _, p := range problems {
				fmt.Printf("  %s✗%s %s\n", ux.Red, ux.Reset, p)
			}
			return fmt.Errorf("%d of %d files failed verification", len(problems), len(st.Artifacts))
		},
	}
}

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print slide texts of a .pptx or rows of a .xlsx",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("file argument is required")
			}
			return inspect.Print(os.Stdout, path)
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write an example course.yaml in the current directory",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "roster", Usage: "Also write roster.xlsx and point the config at it"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir, scaffold.Options{Roster: cmd.Bool("roster")})
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'coursegen docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

// loadConfig loads --config, or the course.yaml found by walking up from cwd.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	if path == "" {
		dir, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path, err = config.Find(dir)
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cli.Command) *slog.Logger {
	if !cmd.Bool("verbose") {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
