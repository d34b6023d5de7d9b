package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ContentAudit/internal/app"
	"ContentAudit/internal/config"
	"ContentAudit/internal/usecase"
)

var (
	corpusPath   string
	personasPath string
	outputFormat string
	every        time.Duration
	notify       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a content coverage audit",
	Long: `Load the corpus, classify every item, score the persona x stage matrix and
generate a strategy. Without an oracle backend the keyword fallbacks are used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputFormat != formatText && outputFormat != formatJSON {
			return fmt.Errorf("unknown format %q (want text or json)", outputFormat)
		}

		cfg, logger := loadConfig()
		opts := app.Options{Notify: notify}

		if corpusPath != "" {
			entries, err := config.LoadCorpus(corpusPath)
			if err != nil {
				return err
			}
			opts.Corpus = entries
			opts.Root = filepath.Dir(corpusPath)
		}
		if personasPath != "" {
			roster, err := config.LoadPersonas(personasPath)
			if err != nil {
				return err
			}
			opts.Personas = roster
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		application, err := app.New(ctx, cfg, logger, opts)
		if err != nil {
			return err
		}
		logger.Info("oracle backend", "backend", application.Backend())

		out := cmd.OutOrStdout()
		if every > 0 {
			return application.RunEvery(ctx, every, func(_ time.Time, report usecase.Report, err error) {
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
					return
				}
				if werr := writeReport(out, report); werr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", werr)
				}
			})
		}

		report, err := application.Run(ctx)
		if err != nil {
			return err
		}
		return writeReport(out, report)
	},
}

func writeReport(w io.Writer, report usecase.Report) error {
	if outputFormat == formatJSON {
		return renderJSON(w, report)
	}
	renderText(w, report)
	return nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&corpusPath, "corpus", "", "YAML corpus manifest (overrides config corpus)")
	analyzeCmd.Flags().StringVar(&personasPath, "personas", "", "YAML persona roster (overrides config personas)")
	analyzeCmd.Flags().StringVarP(&outputFormat, "format", "f", formatText, "output format: text or json")
	analyzeCmd.Flags().DurationVar(&every, "every", 0, "re-run the audit on this interval until interrupted")
	analyzeCmd.Flags().BoolVar(&notify, "notify", false, "send a digest to the configured Telegram chat")
}

