package quizgen

// Question is a single multiple-choice question ready for display.
// Questions are value types; callers that need to keep one past the
// session (e.g. bookmarks) copy it.
type Question struct {
	// Text is the question prompt shown to the student.
	Text string

	// Choices contains exactly 4 answer options after parsing.
	Choices []string

	// CorrectIndex is the position of the correct option (0-3).
	CorrectIndex int

	// Explanation is the worked solution shown after grading.
	Explanation Explanation
}

// Explanation holds the step-by-step solution and an optional video
// reference for a question.
type Explanation struct {
	// Steps is the step-by-step solution text. Never empty after
	// parsing; a missing explanation gets DefaultExplanation.
	Steps string

	// VideoURL is a video reference for the solution, empty when the
	// model supplied none.
	VideoURL string
}

// GenerateInput holds all context needed to generate a quiz.
type GenerateInput struct {
	// Topic is the free-text topic the quiz covers, e.g. "Rotational
	// Motion" or "Coordination Compounds".
	Topic string

	// Difficulty is a free-text difficulty label ("easy", "medium",
	// "hard"). Empty means the prompt default.
	Difficulty string

	// Count is the number of questions requested. The model may return
	// fewer; the result is never padded or re-requested.
	Count int

	// WeakTopics are topics the student has struggled with. When set,
	// the prompt asks the model to bias question selection toward them.
	WeakTopics []string
}
