package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/skilylabs/skily/internal/store"
	"github.com/skilylabs/skily/internal/topics"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past quiz runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		topicFlag, _ := cmd.Flags().GetString("topic")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		runs, err := s.EventRepo().QueryQuizSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query quiz runs: %w", err)
		}

		if topicFlag != "" {
			topic, err := topics.Parse(topicFlag)
			if err != nil {
				return err
			}
			filtered := runs[:0]
			for _, r := range runs {
				if r.Topic == string(topic) {
					filtered = append(filtered, r)
				}
			}
			runs = filtered
		}

		if len(runs) == 0 {
			fmt.Println("No quiz runs recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-16s  %-9s  %7s  %6s  %8s\n",
			"Date", "Topic", "Result", "Correct", "Score", "Duration")
		fmt.Println(strings.Repeat("─", 76))

		for _, r := range runs {
			name := r.Topic
			if info, err := topics.Get(topics.Topic(r.Topic)); err == nil {
				name = info.Name
			}
			result := "finished"
			if r.Action == "abandon" {
				result = "abandoned"
			} else if r.Action == "fail" {
				result = "failed"
			}
			fmt.Printf("%-19s  %-16s  %-9s  %3d/%-3d  %5d%%  %5dm%02ds\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(name, 16),
				result,
				r.CorrectAnswers, r.QuestionsAnswered,
				r.Score,
				r.DurationSecs/60, r.DurationSecs%60,
			)
		}

		if topicFlag != "" {
			topic, _ := topics.Parse(topicFlag)
			acc, err := s.EventRepo().TopicAccuracy(ctx, string(topic))
			if err != nil {
				return fmt.Errorf("query topic accuracy: %w", err)
			}
			fmt.Printf("\nAnswer accuracy for %s: %.0f%%\n", topicFlag, acc*100)
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
	historyCmd.Flags().StringP("topic", "t", "", "Filter by topic ID (e.g. signals)")
}
