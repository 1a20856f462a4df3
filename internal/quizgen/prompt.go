package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an examiner writing multiple-choice questions for an official driving theory test.

Rules:
- Generate a single question appropriate for the given topic, in the style of an official theory exam.
- The question must be clear, self-contained, and answerable without seeing an image. If the question refers to a sign or scene, describe it in image_hint and make the text work on its own.
- Provide exactly 4 options where exactly one is correct. Distractors should reflect plausible misconceptions, not random values.
- Options must be distinct and similar in length and register, so the correct one does not stand out.
- The explanation should state why the correct option is right in one or two sentences, naming the rule involved when possible.
- Vary question style: rules of the road, numeric limits, sign recognition, best-practice judgment calls.
- Do not repeat any question from the "already asked" list, and avoid near-duplicates of them.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic.Name)
	fmt.Fprintf(&b, "Description: %s\n", input.Topic.Description)

	b.WriteString("\nAlready asked in this quiz:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}
