package entity

import (
	"fmt"
	"time"
)

// Bot is an operator-defined chatbot. Answers combine an LLM completion with
// content retrieved from the bot's content type in the external content store.
type Bot struct {
	ID           string
	Name         string
	Description  string
	ContentType  string
	SystemPrompt string
	Model        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role    ChatRole  `json:"role"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sent_at"`
}

type ResultFormat string

const (
	FormatPDF  ResultFormat = "pdf"
	FormatDOCX ResultFormat = "docx"
)

func (f ResultFormat) IsValid() bool {
	switch f {
	case FormatPDF, FormatDOCX:
		return true
	default:
		return false
	}
}

// ImportReport summarizes one bulk spreadsheet import run.
type ImportReport struct {
	ContentType string           `json:"content_type"`
	Total       int              `json:"total"`
	Created     int              `json:"created"`
	Failed      int              `json:"failed"`
	Errors      []ImportRowError `json:"errors,omitempty"`
}

// ImportRowError records why a single spreadsheet row was rejected.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (e ImportRowError) String() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}
