package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"ContentAudit/internal/app"
	"ContentAudit/internal/config"
	"ContentAudit/internal/domain"
)

var (
	briefTitle      string
	briefType       string
	briefStage      string
	briefPersona    string
	briefWithCorpus bool
)

var briefCmd = &cobra.Command{
	Use:   "brief",
	Short: "Write a content brief for one planned piece",
	Long: `Ask the oracle backend for a content brief: title options, keywords, outline,
messages, calls to action and distribution. With --with-corpus the corpus is audited
first and the persona's existing content is given as reference.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stage, ok := domain.ParseStage(strings.ToLower(briefStage))
		if !ok {
			return fmt.Errorf("unknown funnel stage %q", briefStage)
		}

		cfg, logger := loadConfig()
		var opts app.Options
		if corpusPath != "" {
			entries, err := config.LoadCorpus(corpusPath)
			if err != nil {
				return err
			}
			opts.Corpus = entries
			opts.Root = filepath.Dir(corpusPath)
			briefWithCorpus = true
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

		rec := domain.ContentRecommendation{Title: briefTitle, Type: briefType, FunnelStage: stage}
		brief, err := application.Brief(ctx, rec, briefPersona, briefWithCorpus)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), brief)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(briefCmd)

	briefCmd.Flags().StringVar(&briefTitle, "title", "", "title of the piece to brief")
	briefCmd.Flags().StringVar(&briefType, "type", "blog_post", "content type")
	briefCmd.Flags().StringVar(&briefStage, "stage", string(domain.StageAwareness), "funnel stage: awareness, consideration or decision")
	briefCmd.Flags().StringVar(&briefPersona, "persona", "", "target persona name (case-insensitive)")
	briefCmd.Flags().BoolVar(&briefWithCorpus, "with-corpus", false, "audit the corpus first and reference the persona's content")
	briefCmd.Flags().StringVar(&corpusPath, "corpus", "", "YAML corpus manifest (implies --with-corpus)")
	briefCmd.Flags().StringVar(&personasPath, "personas", "", "YAML persona roster (overrides config personas)")
	_ = briefCmd.MarkFlagRequired("title")
	_ = briefCmd.MarkFlagRequired("persona")
}
