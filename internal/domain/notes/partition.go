package notes

import "strings"

const (
	// QuizMarker separates study notes from quiz questions in a completion.
	QuizMarker = "Quiz Questions:"
	// NoQuizFound is the quiz value when the completion has no marker.
	NoQuizFound = "No quiz questions found."
)

// SplitQuiz splits text at the first occurrence of QuizMarker and trims both
// halves. Without a marker the whole trimmed text is the notes.
func SplitQuiz(text string) (notes, quiz string) {
	before, after, found := strings.Cut(text, QuizMarker)
	if !found {
		return strings.TrimSpace(text), NoQuizFound
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}
