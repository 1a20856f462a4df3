package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/skilylabs/skily/internal/llm"
	"github.com/skilylabs/skily/internal/quizgen"
	"github.com/skilylabs/skily/internal/topics"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated questions for a topic (no database)",
	Long: `Generate and interactively answer questions for a specific topic.

This is a stateless developer tool — no database, no mastery tracking, no events.
Useful for evaluating question quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "", "Topic ID or display name (required)")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	_ = previewCmd.MarkFlagRequired("topic")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topicVal, _ := cmd.Flags().GetString("topic")
	count, _ := cmd.Flags().GetInt("count")

	topic, err := topics.Parse(topicVal)
	if err != nil {
		return err
	}
	info, err := topics.Get(topic)
	if err != nil {
		return err
	}

	// Create LLM provider (no EventRepo — logging skipped).
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := quizgen.New(provider, quizgen.DefaultConfig())
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Topic: %s %s — %s\n", info.Icon, info.Name, info.Description)
	fmt.Printf("Generating %d questions...\n\n", count)

	var correct int
	var priorQuestions []string

	for i := 1; i <= count; i++ {
		input := quizgen.GenerateInput{
			Topic:          info,
			PriorQuestions: priorQuestions,
		}

		q, err := gen.Generate(ctx, input)
		if err != nil {
			fmt.Printf("Question %d: generation failed: %v\n\n", i, err)
			continue
		}

		priorQuestions = append(priorQuestions, q.Text)

		// Display question.
		fmt.Printf("── Question %d/%d ──\n", i, count)
		fmt.Println(q.Text)
		if q.ImageHint != "" {
			fmt.Printf("[%s]\n", q.ImageHint)
		}
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		// Read answer.
		fmt.Print("\nYour answer (1-4): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		choice, err := strconv.Atoi(answer)
		if err != nil || choice < 1 || choice > len(q.Options) {
			fmt.Print("(invalid answer, skipped)\n\n")
			continue
		}

		if choice-1 == q.CorrectIndex {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Options[q.CorrectIndex])
		}

		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	// Summary.
	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}
