// Package main implements the filespecs CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/adrg/xdg"
	filespecs "github.com/mtth/filespecs/internal"
	"github.com/mtth/filespecs/internal/except"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func setupLogging() {
	var errs []error

	fp, ok := os.LookupEnv("LOGS_DIRECTORY")
	if !ok {
		var err error
		fp, err = xdg.StateFile("filespecs/log")
		if err != nil {
			errs = append(errs, err)
			fp = "filespecs.log"
		}
	}

	var writer io.Writer
	if file, err := os.OpenFile(fp, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		writer = file
	} else {
		errs = append(errs, err)
		writer = os.Stdout
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(handler))
	if len(errs) > 0 {
		slog.Error("Log setup failed.", except.LogErrAttr(errors.Join(errs...)))
	}
}

func main() {
	setupLogging()
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	baseDir    string
	excludes   []string
	recursive  bool
}

var errNoPatterns = errors.New("no patterns specified")

func newRootCmd() *cobra.Command {
	var flags rootFlags
	var nullSeparated bool

	expandCmd := &cobra.Command{
		Use:   "expand [PATTERN...]",
		Short: "Print the files matched by each pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			expander, patterns, err := flags.newExpander(args)
			if err != nil {
				return err
			}
			paths, err := expander.Expand(patterns)
			if err != nil {
				return err
			}
			sep := "\n"
			if nullSeparated {
				sep = "\x00"
			}
			out := cmd.OutOrStdout()
			for _, fp := range paths {
				fmt.Fprint(out, fp, sep) //nolint:forbidigo
			}
			return nil
		},
	}
	expandCmd.Flags().BoolVarP(&nullSeparated, "null", "0", false, "separate paths with NUL instead of newlines")

	checkCmd := &cobra.Command{
		Use:   "check [PATTERN...]",
		Short: "Show how many files each pattern matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			expander, patterns, err := flags.newExpander(args)
			if err != nil {
				return err
			}
			exps, err := expander.ExpandEach(patterns)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := isTerminal(out)
			var empty int
			for _, exp := range exps {
				status := exp.Status().String()
				if exp.Status() == filespecs.StatusEmpty {
					empty++
					if colorize {
						status = colorRed + status + colorReset
					}
				}
				fmt.Fprintf(out, "%s\t%d\t%s\n", status, len(exp.Matches), exp.Pattern) //nolint:forbidigo
			}
			if empty > 0 {
				return fmt.Errorf("%d of %d pattern(s) expanded to empty", empty, len(exps))
			}
			return nil
		},
	}

	rootCmd := &cobra.Command{Use: "filespecs", SilenceUsage: true}
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "path to configuration")
	rootCmd.PersistentFlags().StringVarP(&flags.baseDir, "base", "C", "", "directory relative patterns are resolved against")
	rootCmd.PersistentFlags().StringArrayVarP(&flags.excludes, "exclude", "x", nil, "exclude matching paths (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&flags.recursive, "recursive", "r", false, "let ** match across directories")
	rootCmd.AddCommand(expandCmd, checkCmd)
	return rootCmd
}

// newExpander merges the configuration with command line flags. Flags take precedence, exclusions
// and patterns are concatenated.
func (f *rootFlags) newExpander(args []string) (*filespecs.Expander, []string, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	cfg.Exclude = append(cfg.Exclude, f.excludes...)
	if f.baseDir != "" {
		cfg.Base = f.baseDir
	}
	cfg.Recursive = cfg.Recursive || f.recursive

	patterns := append(slices.Clone(cfg.Patterns), args...)
	if len(patterns) == 0 {
		return nil, nil, errNoPatterns
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, nil, err
	}
	return filespecs.NewExpander(opts...), patterns, nil
}

func (f *rootFlags) loadConfig() (*filespecs.Config, error) {
	if f.configPath != "" {
		return filespecs.ReadConfig(f.configPath)
	}
	return filespecs.FindConfig(".")
}

const (
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
