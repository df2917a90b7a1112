package pkg

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the format of the timestamp column in the logs table
// (YYYY-MM-DD HH:MM:SS, local time).
const TimestampLayout = "2006-01-02 15:04:05"

// ErrorMarker is persisted as the diagnosis when the completion service
// failed, so failed exchanges stay distinguishable in the audit log.
const ErrorMarker = "Error"

// Exchange is one completed round-trip: what the user typed and the display
// text produced for it.  It is created once and never modified.
type Exchange struct {
	ID            uuid.UUID `json:"id"`
	Locale        string    `json:"locale"`
	UserText      string    `json:"user_text"`
	AssistantText string    `json:"assistant_text"`
	CreatedAt     time.Time `json:"created_at"`
}

// LogRecord is a row of the logs table as read back from the store.
type LogRecord struct {
	Symptoms  string `json:"symptoms"`
	Diagnosis string `json:"diagnosis"`
	Timestamp string `json:"timestamp"`
}

// DiagnoseRequest is the form submitted by the chat page.
type DiagnoseRequest struct {
	Locale   string `json:"lang"`
	Symptoms string `json:"symptoms"`
}
