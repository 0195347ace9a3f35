package logger

import (
	"errors"
	"strings"
)

// messager is an error that can report its own message without the chain.
// zerr errors implement it; anything else ends the walk.
type messager interface {
	Message() string
}

// collectErrorMessages walks the chain of err and returns one message per layer.
func collectErrorMessages(err error) []string {
	var messages []string

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		messages = append(messages, m.Message())
		current = errors.Unwrap(current)
	}

	return messages
}

// formatErrorMessages renders the outermost message as the error and the rest as causes.
func formatErrorMessages(messages []string) string {
	var b strings.Builder

	for i, msg := range messages {
		lines := strings.Split(msg, "\n")

		if i == 0 {
			b.WriteString("Error: " + lines[0])
			for _, line := range lines[1:] {
				b.WriteString("\n       " + line)
			}
			continue
		}

		if i == 1 {
			b.WriteString("\n\n  Caused by:")
		}
		b.WriteString("\n    → " + lines[0])
		for _, line := range lines[1:] {
			b.WriteString("\n      " + line)
		}
	}

	return b.String()
}
