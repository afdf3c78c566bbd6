package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/calcpad"
	"github.com/iw2rmb/calcpad/calc"
	"github.com/iw2rmb/calcpad/config"
	"github.com/iw2rmb/calcpad/editor"
	"github.com/iw2rmb/calcpad/state"
)

type options struct {
	configFile string
	stateFile  string
	precision  int
	noRestore  bool
	noColor    bool
	showHelp   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "calcpad",
		Short: "Keypad calculator for the terminal",
		Long: `Calcpad is a scientific keypad calculator for the terminal.

Type or click keys to build an expression and press enter to evaluate it.
The expression on the display is saved on exit and restored on the next run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", config.DefaultPath(), "Configuration file (YAML)")
	pf.IntVar(&opts.precision, "precision", calc.DefaultPrecision, "Decimals results are rounded to")

	f := cmd.Flags()
	f.StringVar(&opts.stateFile, "state", "", "State file (defaults to state_file from the config)")
	f.BoolVar(&opts.noRestore, "no-restore", false, "Start with an empty display")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable colours")
	f.BoolVar(&opts.showHelp, "help-line", true, "Show the key help line")

	cmd.AddCommand(newEvalCmd(opts), newConfigCmd(opts), newVersionCmd())
	return cmd
}

// loadConfig reads the config file, applies flag overrides and validates
// the result.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Parse(opts.configFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("precision") {
		cfg.Precision = opts.precision
	}
	if opts.stateFile != "" {
		cfg.StateFile = opts.stateFile
	}
	if opts.noRestore {
		cfg.Restore = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", opts.configFile, err)
	}
	return cfg, nil
}

func newEvaluator(cfg *config.Config) *calc.Evaluator {
	return calc.NewEvaluator(nil, calc.EvaluatorOptions{
		Precision:            cfg.Precision,
		CollapseDivideByZero: cfg.CollapseDivideByZero,
	})
}

func runTUI(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger(cfg.LogFile, cfg.SlogLevel())
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("starting", "version", calcpad.UserAgent(), "config", opts.configFile)

	m := newApp(editorConfig(cfg, opts, logger, restoredText(cfg, logger)))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run calculator: %w", err)
	}
	if a, ok := final.(app); ok {
		saveState(cfg.StateFile, a.editor.Text(), logger)
	}
	return nil
}

func editorConfig(cfg *config.Config, opts *options, logger *slog.Logger, text string) editor.Config {
	r := lipgloss.NewRenderer(os.Stdout)
	if opts.noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return editor.Config{
		Text:         text,
		HistoryLimit: cfg.HistoryLimit,
		Evaluator:    newEvaluator(cfg),
		Logger:       logger,
		Style:        editor.StyleFromTheme(r, cfg.Theme),
		KeyMap:       editor.DefaultKeyMap(),
		ShowHelp:     opts.showHelp,
		Clipboard:    newClipboard(),
		OnChange: func(ev editor.ChangeEvent) {
			logger.Debug("display changed", "text", ev.Text, "cursor", ev.Cursor, "mode", ev.Mode)
		},
	}
}

func restoredText(cfg *config.Config, logger *slog.Logger) string {
	if !cfg.Restore {
		return ""
	}
	snap, err := state.Load(cfg.StateFile)
	if err != nil {
		logger.Warn("restore failed", "err", err)
		return ""
	}
	return snap.Expression
}

func saveState(path, text string, logger *slog.Logger) {
	if err := state.Save(path, state.Snapshot{Expression: text}); err != nil {
		logger.Warn("save failed", "err", err)
	}
}
