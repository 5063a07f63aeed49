package notes

import "fmt"

const summaryTemplate = `
Please summarize the following meeting notes into a structured, concise format.
Include key decisions, action items, and important discussion points:

%s
`

const studyNotesTemplate = `
You are an expert %s tutor. Turn the following lecture notes into:
1. Well-structured study notes with headings, key concepts and definitions.
2. 3-5 quiz questions that test understanding of the material.

Write the study notes first. Then start the quiz on its own line with "%s"
followed by the numbered questions.

Lecture notes:
%s
`

// SummaryPrompt renders the meeting summary instruction around notes.
func SummaryPrompt(notes string) string {
	return fmt.Sprintf(summaryTemplate, notes)
}

// StudyNotesPrompt renders the study notes and quiz instruction.
func StudyNotesPrompt(subject, notes string) string {
	return fmt.Sprintf(studyNotesTemplate, subject, QuizMarker, notes)
}
