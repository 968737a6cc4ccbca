// Package greeting renders the greeting emitted by the greet CLI, either as
// a plain line of text or as a single structured JSON record.
package greeting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

const (
	// Text is the greeting content shared by both encodings.
	Text = "Hello world"
	// MessageType is the discriminant of the structured record.
	MessageType = "message"
)

// Options are built once from the command line and never mutated.
type Options struct {
	EmitStructured bool
}

// Message is the structured form of the greeting. Field order is part of
// the output contract.
type Message struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// NewMessage returns the greeting record.
func NewMessage() Message {
	return Message{Type: MessageType, Content: Text}
}

// Format reports the encoding selected by the options.
func (o Options) Format() string {
	if o.EmitStructured {
		return "json"
	}
	return "text"
}

// Render returns the exact bytes written for opts, trailing newline included.
func Render(opts Options) ([]byte, error) {
	if !opts.EmitStructured {
		return []byte(Text + "\n"), nil
	}
	return encodeJSONCompact(NewMessage())
}

// Write renders the greeting and writes it to w in a single call.
func Write(w io.Writer, opts Options) error {
	data, err := Render(opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write greeting: %w", err)
	}
	return nil
}

func encodeJSONCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
