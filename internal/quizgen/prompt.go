package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a JEE (Joint Entrance Exam) tutor creating practice quizzes for an aspirant.

Rules:
- Pick questions from existing previous year questions (PYQs) available for the JEE exam when possible.
- Every question is single choice with exactly 4 answer options and one correct answer.
- Use plain text with Unicode superscripts/subscripts (e.g. n², 2ⁿ, H₂O). No HTML tags, no LaTeX.
- Explain each solution step by step, as a JEE teacher would: break down the problem, mention key formulas or concepts, and guide the student through the solution. Use markdown with bullet points for steps and bold text for important terms.
- When a relevant YouTube video explaining the problem exists, include its link; otherwise use an empty string.

Respond with a JSON array of objects, one per question, in exactly this shape:
[
  {
    "question": "The question text",
    "answers": ["Answer A", "Answer B", "Answer C", "Answer D"],
    "correctAnswer": 0,
    "explanation": {
      "detailed_steps": "Detailed step-by-step explanation using markdown...",
      "youtube_link": "URL or empty string"
    }
  }
]

Return only the JSON array, no surrounding prose.`

// buildUserMessage constructs the generation request from the input.
func buildUserMessage(input GenerateInput) string {
	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Generate a quiz on the topic %q.\n", input.Topic)
	fmt.Fprintf(&b, "Desired difficulty level: %s\n", difficulty)
	fmt.Fprintf(&b, "The quiz should have exactly %d single choice questions.\n", input.Count)

	weak := "None identified"
	if len(input.WeakTopics) > 0 {
		weak = strings.Join(input.WeakTopics, ", ")
	}
	b.WriteString("\nWeak topics the student needs more attention on:\n")
	b.WriteString(weak)
	fmt.Fprintf(&b, "\n\nFocus more on these weak topics if they are related to %s.\n", input.Topic)
	b.WriteString("Ensure all questions are appropriate for JEE level and the specified difficulty.")

	return b.String()
}
