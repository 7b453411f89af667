package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harjot/proton/internal/diagram"
)

var diagramCmd = &cobra.Command{
	Use:   "diagram [description]",
	Short: "Fetch a diagram for a description",
	Long:  "Generate or find a diagram through the configured image backend and save it to a file.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		provider, err := diagram.New(cfg.Diagram)
		if err != nil {
			return err
		}

		description := strings.Join(args, " ")
		result, err := provider.Fetch(cmd.Context(), description)
		if err != nil {
			return err
		}

		if len(result.URLs) > 0 {
			for _, u := range result.URLs {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = "diagram.png"
			if result.Image.MIME == "image/jpeg" {
				out = "diagram.jpg"
			}
		}
		if err := os.WriteFile(out, result.Image.Data, 0o644); err != nil {
			return fmt.Errorf("write image: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "saved", out)
		return nil
	},
}

func init() {
	diagramCmd.Flags().String("out", "", "Output file for the fetched image")
}
