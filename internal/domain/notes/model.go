package notes

import (
	"encoding/json"
	"time"
)

// Body keys accepted by the two flows.
const (
	FieldMeetingNotes = "meetingNotes"
	FieldLectureNotes = "lectureNotes"
	FieldSubject      = "subject"

	// DefaultSubject labels lecture notes submitted without a subject.
	DefaultSubject = "General"
)

// Config carries the model settings shared by every request.
type Config struct {
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// Request is the decoded JSON object body. Values stay raw so that field
// presence, not field type, decides validity.
type Request struct {
	Fields map[string]json.RawMessage
}

// NewRequest builds a Request from plain string values.
func NewRequest(values map[string]string) Request {
	fields := make(map[string]json.RawMessage, len(values))
	for key, value := range values {
		raw, _ := json.Marshal(value)
		fields[key] = raw
	}
	return Request{Fields: fields}
}

// text returns the value of key and whether the key is present. JSON strings
// are unquoted; any other JSON value is returned as its raw text.
func (r Request) text(key string) (string, bool) {
	raw, ok := r.Fields[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	return string(raw), true
}

func (r Request) subject() string {
	raw, ok := r.Fields[FieldSubject]
	if !ok || string(raw) == "null" {
		return DefaultSubject
	}
	subject, _ := r.text(FieldSubject)
	return subject
}

// SummaryResponse is returned by the meeting summary flow.
type SummaryResponse struct {
	Success bool   `json:"success"`
	Summary string `json:"summary"`
}

// StudyNotesResponse is returned by the study notes flow.
type StudyNotesResponse struct {
	Success bool   `json:"success"`
	Notes   string `json:"notes"`
	Quiz    string `json:"quiz"`
}

// Failure is the envelope for errors raised while producing a result.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ClientError is the envelope for rejected requests. It has no success flag.
type ClientError struct {
	Error string `json:"error"`
}
