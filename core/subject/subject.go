package subject

import (
	"errors"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ErrEmptySubject is returned when nothing gradable remains after cleaning.
var ErrEmptySubject = errors.New("subject is empty")

// Normalize cleans raw text for grading. Input that looks like an HTML
// document or fragment is converted to Markdown first.
func Normalize(raw string) (string, error) {
	text := strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	if LooksLikeHTML(text) {
		return FromHTML(text)
	}
	if text == "" {
		return "", ErrEmptySubject
	}
	return text, nil
}

// FromHTML converts an HTML document to Markdown and trims the result.
func FromHTML(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("convert html to markdown: %w", err)
	}
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return "", ErrEmptySubject
	}
	return markdown, nil
}

// LooksLikeHTML reports whether text starts with a tag, doctype or comment.
func LooksLikeHTML(text string) bool {
	text = strings.TrimSpace(text)
	if len(text) < 3 || text[0] != '<' {
		return false
	}
	next := text[1]
	isLetter := (next >= 'a' && next <= 'z') || (next >= 'A' && next <= 'Z')
	return isLetter || next == '!'
}
