package cmd

import (
	"fmt"
	"strings"

	"github.com/skilylabs/skily/internal/topics"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the exam topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-16s  %-4s  %-22s  %s\n", "ID", "", "Name", "Description")
		fmt.Println(strings.Repeat("─", 96))

		for _, info := range topics.All() {
			desc := info.Description
			if len(desc) > 50 {
				desc = desc[:47] + "..."
			}
			fmt.Printf("%-16s  %-4s  %-22s  %s\n",
				info.Topic, info.Icon, info.Name, desc)
		}

		fmt.Printf("\n%d topics\n", topics.Count())
		return nil
	},
}
