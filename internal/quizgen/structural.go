package quizgen

import "strings"

// StructuralValidator checks that required fields are present and
// within length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "text exceeds 500 characters",
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(q.Explanation) > 1000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 1000 characters",
			Retryable: true,
		}
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty must be between 1 and 5",
			Retryable: true,
		}
	}
	return nil
}

// OptionsValidator checks the answer options: exactly four, non-empty,
// pairwise distinct, with the correct index in range.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if len(q.Options) != OptionCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "must have exactly 4 options",
			Retryable: true,
		}
	}

	seen := make(map[string]bool, OptionCount)
	for _, opt := range q.Options {
		trimmed := strings.TrimSpace(opt)
		if trimmed == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "option is empty",
				Retryable: true,
			}
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "options contain duplicates",
				Retryable: true,
			}
		}
		seen[key] = true
	}

	if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct_index out of range",
			Retryable: true,
		}
	}
	return nil
}
