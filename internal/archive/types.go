// Package archive loads and saves conversation export archives.
//
// An archive is a JSON array of conversation records as produced by a chat
// export. Each record is decoded into the fields the tools operate on, and
// the original record bytes are kept alongside so that filtering re-emits
// records verbatim, preserving fields and key order this package does not
// model.
package archive

import (
	"encoding/json"
	"fmt"
)

// Message is one turn in a conversation.
type Message struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// IsHuman reports whether the message was sent by the human participant.
// Every other sender value is treated as the assistant.
func (m Message) IsHuman() bool {
	return m.Sender == "human"
}

// Conversation is one chat session record.
type Conversation struct {
	UUID     string    `json:"uuid"`
	Name     string    `json:"name"`
	Messages []Message `json:"chat_messages"`

	// raw holds the undecoded record bytes from the source archive.
	raw json.RawMessage
}

// Archive is the ordered collection of conversations from one input file.
type Archive []Conversation

// Title returns the conversation name, or a positional fallback for
// unnamed conversations. index is 1-based.
func (c Conversation) Title(index int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("conversation_%d", index)
}

// UnmarshalJSON decodes the known fields and retains the raw record.
func (c *Conversation) UnmarshalJSON(data []byte) error {
	type conversation Conversation
	var decoded conversation
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*c = Conversation(decoded)
	c.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the original record bytes when the conversation came
// from a source archive, falling back to field-wise encoding otherwise.
func (c Conversation) MarshalJSON() ([]byte, error) {
	if len(c.raw) > 0 {
		return c.raw, nil
	}
	type conversation Conversation
	return json.Marshal(conversation(c))
}
