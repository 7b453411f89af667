package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harjot/proton/internal/config"
	"github.com/harjot/proton/internal/llm"
	"github.com/harjot/proton/internal/store"
	"github.com/harjot/proton/internal/syllabus"
	"github.com/harjot/proton/internal/tutor"
)

var rootCmd = &cobra.Command{
	Use:   "proton",
	Short: "AI science tutor for classes 6-10",
	Long:  "Professor Proton — terminal science tutor for Indian school classes 6-10, in English or Punjabi.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Int("grade", 0, "Class level 6-10 (overrides PROTON_GRADE)")
	rootCmd.PersistentFlags().String("language", "", "Answer language: english or punjabi (overrides PROTON_LANGUAGE)")
	rootCmd.PersistentFlags().String("resolver", "", "Answer resolver: groq, openai, gemini, anthropic, static or mock (overrides PROTON_RESOLVER)")
	rootCmd.PersistentFlags().Bool("structured", false, "Ask for structured answers (definition, points, formula, example)")
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite transcript database (overrides PROTON_DB)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(syllabusCmd)
	rootCmd.AddCommand(diagramCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads env configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if g, _ := cmd.Flags().GetInt("grade"); g != 0 {
		cfg.Grade = g
	}
	if l, _ := cmd.Flags().GetString("language"); l != "" {
		lang, err := tutor.ParseLanguage(l)
		if err != nil {
			return nil, err
		}
		cfg.Language = lang
	}
	if r, _ := cmd.Flags().GetString("resolver"); r != "" {
		cfg.Resolver = r
	}
	if s, _ := cmd.Flags().GetBool("structured"); s {
		cfg.Structured = true
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore opens the transcript store. A store failure is reported but
// not fatal; the conversation just runs without an audit log.
func openStore(cfg *config.Config) *store.Store {
	path := cfg.DBPath
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: transcript store disabled:", err)
			return nil
		}
		path = p
	}

	st, err := store.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: transcript store disabled:", err)
		return nil
	}
	return st
}

// buildResolverFactory returns a factory producing the configured resolver
// variant. A missing credential for a hosted provider is fatal here,
// before any input is accepted.
func buildResolverFactory(ctx context.Context, cfg *config.Config, st *store.Store) (func(int, tutor.Language) (tutor.Resolver, error), error) {
	if !cfg.UsesHostedResolver() {
		table := syllabus.Default()
		return func(grade int, lang tutor.Language) (tutor.Resolver, error) {
			r, err := tutor.NewStaticResolver(table, grade, lang)
			if err != nil {
				return nil, err
			}
			return r, nil
		}, nil
	}

	calls := store.NopModelCalls()
	if st != nil {
		calls = st.ModelCalls()
	}

	llmCfg := cfg.LLM
	llmCfg.Provider = cfg.ProviderName()

	provider, err := llm.NewProvider(ctx, llmCfg, calls)
	if err != nil {
		return nil, err
	}

	mode := tutor.ModeFreeText
	if cfg.Structured {
		mode = tutor.ModeStructured
	}

	return func(grade int, lang tutor.Language) (tutor.Resolver, error) {
		r, err := tutor.NewHostedResolver(provider, grade, lang, mode)
		if err != nil {
			return nil, err
		}
		return r, nil
	}, nil
}
