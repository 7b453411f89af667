package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harjot/proton/internal/syllabus"
)

var syllabusCmd = &cobra.Command{
	Use:   "syllabus",
	Short: "List the built-in offline topics",
	Long:  "Print the topics the static resolver can answer, grouped by class.",
	RunE: func(cmd *cobra.Command, args []string) error {
		onlyGrade, _ := cmd.Flags().GetInt("grade")
		if onlyGrade != 0 && !syllabus.ValidGrade(onlyGrade) {
			return fmt.Errorf("grade must be between %d and %d, got %d",
				syllabus.MinGrade, syllabus.MaxGrade, onlyGrade)
		}

		table := syllabus.Default()
		out := cmd.OutOrStdout()

		for g := syllabus.MinGrade; g <= syllabus.MaxGrade; g++ {
			if onlyGrade != 0 && g != onlyGrade {
				continue
			}

			recs := table.ForGrade(g)
			if len(recs) == 0 {
				continue
			}

			fmt.Fprintf(out, "Class %d\n", g)
			for _, r := range recs {
				fmt.Fprintf(out, "  %-24s %s\n", r.Topic, strings.Join(r.Keywords, ", "))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}
