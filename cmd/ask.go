package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/skilylabs/skily/internal/llm"
	"github.com/skilylabs/skily/internal/tutor"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the tutor a one-off question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		ctx := context.Background()
		provider, err := llm.NewProviderFromEnv(ctx, nil)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		svc := tutor.NewService(provider, tutor.DefaultConfig())
		fmt.Println(svc.Ask(ctx, nil, question))
		return nil
	},
}
