package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/ocsview/internal/launcher"
	"github.com/Norgate-AV/ocsview/internal/logger"
	"github.com/Norgate-AV/ocsview/internal/ocs"
	"github.com/Norgate-AV/ocsview/internal/render"
	"github.com/Norgate-AV/ocsview/internal/shellpath"
	"github.com/Norgate-AV/ocsview/internal/version"
)

// RootCmd is the root command for the ocsview CLI application.
var RootCmd = &cobra.Command{
	Use:          "ocsview <file-path>",
	Short:        "ocsview - Render OCS launcher configurations as a menu tree",
	Version:      version.GetVersion(),
	Args:         validateArgs,
	RunE:         Execute,
	SilenceUsage: true, // Don't show usage on runtime errors
}

func init() {
	// Set custom version template to show full version info
	RootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// Add flags
	RootCmd.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolP("json", "j", false, "emit the launcher tree as JSON")
	RootCmd.PersistentFlags().Bool("no-resolve", false, "skip identifier list path resolution")
	RootCmd.PersistentFlags().BoolP("logs", "l", false, "print the current log file to stdout and exit")
}

// validateArgs validates that an .ocs file argument is provided (if any args given)
func validateArgs(cmd *cobra.Command, args []string) error {
	// Allow 0 args for --logs flag and the OCSVIEW_PATH default
	if len(args) == 0 {
		return nil
	}

	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}

	if filepath.Ext(args[0]) != ".ocs" {
		return fmt.Errorf("file must have .ocs extension")
	}

	return nil
}

// handleLogsFlag processes the --logs flag and exits if needed
func handleLogsFlag(cfg *Config, exitFunc func(int)) error {
	if !cfg.ShowLogs {
		return nil
	}

	if err := logger.PrintLogFile(nil, logger.LoggerOptions{}); err != nil {
		if os.IsNotExist(err) {
			logPath := logger.GetLogPath(logger.LoggerOptions{})
			fmt.Fprintf(os.Stderr, "Log file does not exist: %s\n", logPath)
			exitFunc(1)
		}

		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		exitFunc(1)
	}

	exitFunc(0)
	return nil // Won't actually reach here due to exitFunc
}

// initializeLogger creates a logger for this run
func initializeLogger(cfg *Config) (logger.LoggerInterface, error) {
	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose:  cfg.Verbose,
		Compress: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

// validateAndResolvePath validates the file exists and returns its absolute path
func validateAndResolvePath(filePath string, log logger.LoggerInterface) (string, error) {
	log.Debug("Processing file", slog.String("path", filePath))

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", filePath)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("error resolving file path: %w", err)
	}

	return absPath, nil
}

// countItems counts menu items recursively for the run summary
func countItems(items []launcher.MenuItem) int {
	n := 0
	for _, item := range items {
		n++
		if sub, ok := item.(*launcher.Submenu); ok {
			n += countItems(sub.Items)
		}
	}

	return n
}

// Execute runs the provided command with the given arguments.
func Execute(cmd *cobra.Command, args []string) error {
	cfg := NewConfigFromFlags(cmd)

	if err := handleLogsFlag(cfg, os.Exit); err != nil {
		return err
	}

	filePath := cfg.FilePath
	if len(args) > 0 {
		filePath = args[0]
	}

	if filePath == "" {
		return fmt.Errorf("file path required")
	}

	log, err := initializeLogger(cfg)
	if err != nil {
		return err
	}

	defer log.Close()

	log.Debug("Starting ocsview", slog.Any("args", args))
	log.Debug("Flags set",
		slog.Bool("verbose", cfg.Verbose),
		slog.Bool("json", cfg.JSON),
		slog.Bool("resolve", cfg.Resolve),
	)

	// Recover from panics and log them
	defer func() {
		if r := recover(); r != nil {
			log.Error("PANIC RECOVERED",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)

			fmt.Fprintf(os.Stderr, "\n*** PANIC: %v ***\n", r)
			fmt.Fprintf(os.Stderr, "Check log file for details\n")
		}
	}()

	absPath, err := validateAndResolvePath(filePath, log)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	// The document is all-or-nothing: a structural failure refuses to
	// render any menu.
	tree := ocs.NewParser(log).Parse(string(data))

	doc, err := launcher.Interpret(tree)
	if err != nil {
		log.Error("Document interpretation failed", slog.Any("error", err))
		return err
	}

	resolver := shellpath.NewResolver(log)
	renderer := render.NewRenderer(log, resolver, cfg.Resolve)

	view := renderer.Snapshot(doc)

	if cfg.JSON {
		if err := renderer.WriteJSON(os.Stdout, view); err != nil {
			return fmt.Errorf("error writing JSON: %w", err)
		}
	} else {
		if err := renderer.WriteText(os.Stdout, view); err != nil {
			return fmt.Errorf("error writing tree: %w", err)
		}
	}

	total := 0
	for _, l := range doc.Launchers {
		total += countItems(l.Items)
	}

	log.Debug("Rendered launcher tree",
		slog.Int("launchers", len(doc.Launchers)),
		slog.Int("items", total),
	)

	return nil
}
