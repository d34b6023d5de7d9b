package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ContentAudit/internal/config"
	"ContentAudit/internal/domain"
)

var personasCmd = &cobra.Command{
	Use:   "personas [name]",
	Short: "Show the effective persona roster",
	Long:  `Print the personas audits run against, or the details of one persona (case-insensitive).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := loadConfig()
		roster := cfg.Roster()
		if personasPath != "" {
			loaded, err := config.LoadPersonas(personasPath)
			if err != nil {
				return err
			}
			roster = loaded
		}

		out := cmd.OutOrStdout()
		if len(args) == 1 {
			p, ok := roster.Lookup(args[0])
			if !ok {
				return fmt.Errorf("persona %q not found", args[0])
			}
			printPersona(out, p)
			return nil
		}

		for _, p := range roster {
			printPersona(out, p)
		}
		return nil
	},
}

func printPersona(out io.Writer, p domain.Persona) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(out, "%s\n", cyan(p.Name))
	if p.Description != "" {
		fmt.Fprintf(out, "  %s\n", p.Description)
	}
	if len(p.PainPoints) > 0 {
		fmt.Fprintf(out, "  %s %s\n", gray("Pain points:"), strings.Join(p.PainPoints, "; "))
	}
	if len(p.Goals) > 0 {
		fmt.Fprintf(out, "  %s %s\n", gray("Goals:"), strings.Join(p.Goals, "; "))
	}
	fmt.Fprintln(out)
}

func init() {
	rootCmd.AddCommand(personasCmd)
	personasCmd.Flags().StringVar(&personasPath, "personas", "", "YAML persona roster (overrides config personas)")
}
