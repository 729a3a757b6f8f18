package game

import "strings"

// MsgKind controls how a message is colored in the HUD.
type MsgKind uint8

const (
	MsgInfo     MsgKind = iota // neutral
	MsgMatch                   // a pair was found
	MsgMiss                    // cards turned back over
	MsgComplete                // round finished
)

// Message is a single line of the round log.
type Message struct {
	Text string
	Kind MsgKind
}

// MessageLog is a bounded FIFO of messages.
type MessageLog struct {
	Messages []Message
	maxSize  int
	width    int
}

// NewMessageLog creates a log that keeps the most recent maxSize lines,
// wrapping text at width columns (0 disables wrapping).
func NewMessageLog(maxSize, width int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
		width:    width,
	}
}

// Add appends a message, evicting the oldest lines when full.
func (l *MessageLog) Add(text string, kind MsgKind) {
	if l == nil || l.maxSize <= 0 {
		return
	}
	for _, line := range wrapText(text, l.width) {
		msg := Message{Text: line, Kind: kind}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// Recent returns the last n messages (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if l == nil {
		return nil
	}
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}

// Clear drops every message.
func (l *MessageLog) Clear() {
	if l != nil {
		l.Messages = l.Messages[:0]
	}
}

// wrapText splits text on word boundaries into lines no longer than width.
// A single word longer than width gets a line of its own.
func wrapText(s string, width int) []string {
	if width <= 0 || len(s) <= width {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
