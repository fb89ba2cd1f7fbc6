package entity

import "errors"

// Domain errors
var (
	// Bot errors
	ErrBotNotFound = errors.New("bot not found")
	ErrInvalidBot  = errors.New("invalid bot data")

	// Chat errors
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyCompletion      = errors.New("empty completion from LLM")

	// File errors
	ErrInvalidFile      = errors.New("invalid file")
	ErrFileTooLarge     = errors.New("file too large")
	ErrInvalidExtension = errors.New("invalid file extension")
	ErrEmptySpreadsheet = errors.New("spreadsheet contains no data rows")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")
)
