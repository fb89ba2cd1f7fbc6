package chat

import (
	"fmt"
	"strings"

	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/entity"
	"github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/search"
)

// contextResults is how many retrieved entries feed the LLM prompt.
const contextResults = 3

// buildContextBlock renders retrieved entries as the context block of the
// LLM prompt: repeated "Title: ...\nDescription: ..." blocks joined by blank
// lines.
func buildContextBlock(results []search.Result) string {
	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, fmt.Sprintf("Title: %s\nDescription: %s",
			r.Entry.Title(), r.Entry.Description()))
	}
	return strings.Join(blocks, "\n\n")
}

// buildSystemPrompt combines the bot's own system prompt with the retrieved
// context block.
func buildSystemPrompt(bot *entity.Bot, contextBlock string) string {
	var b strings.Builder

	if bot.SystemPrompt != "" {
		b.WriteString(bot.SystemPrompt)
	} else {
		b.WriteString(fmt.Sprintf("You are %s, a helpful assistant.", bot.Name))
	}

	if contextBlock != "" {
		b.WriteString("\n\nUse the following content entries when they are relevant to the question:\n\n")
		b.WriteString(contextBlock)
	}

	return b.String()
}

// renderTranscript flattens a conversation for export.
func renderTranscript(history []entity.ChatMessage) string {
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		lines = append(lines, fmt.Sprintf("[%s] %s", msg.Role, msg.Content))
	}
	return strings.Join(lines, "\n\n")
}
