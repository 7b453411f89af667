package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask one question and print the answer",
	Long:  "Resolve a single question without the chat interface. Useful for scripting and smoke tests.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		st := openStore(cfg)
		if st != nil {
			defer st.Close()
		}

		resolvers, err := buildResolverFactory(cmd.Context(), cfg, st)
		if err != nil {
			return err
		}
		resolver, err := resolvers(cfg.Grade, cfg.Language)
		if err != nil {
			return err
		}

		question := strings.Join(args, " ")
		ans, err := resolver.Resolve(cmd.Context(), question)
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			out, err := json.MarshalIndent(ans, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		if ans.Structured != nil {
			for _, s := range ans.Structured.Sections() {
				if s.Label != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", s.Label, s.Text)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), s.Text)
				}
			}
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), ans.Text)
		return nil
	},
}

func init() {
	askCmd.Flags().Bool("json", false, "Print the raw answer as JSON")
}
