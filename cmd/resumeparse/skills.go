package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artem13815/resumeparser/pkg/nlp"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skill keywords the parser recognises, by category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, cat := range nlp.SkillCategories() {
			labels := make([]string, len(cat.Keywords))
			for i, kw := range cat.Keywords {
				labels[i] = nlp.TitleCase(kw)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", cat.Name, strings.Join(labels, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}
