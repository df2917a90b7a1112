package llm

import (
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

var (
	// ErrNoReply is returned when a client produced neither a reply nor an error.
	ErrNoReply = errors.New("llm: no reply")
	// ErrNoChoices is returned for a structured completion without choices.
	ErrNoChoices = errors.New("llm: completion has no choices")
)

// Reply is what a completion service answered.  It is either a
// StructuredReply or an OpaqueReply; Resolve turns both into plain text.
type Reply interface {
	isReply()
}

// StructuredReply is a regular chat-completion object.
type StructuredReply struct {
	Response openai.ChatCompletionResponse
}

// OpaqueReply is a body that is not a completion object and is used as-is.
type OpaqueReply struct {
	Body string
}

func (StructuredReply) isReply() {}
func (OpaqueReply) isReply()     {}

// Resolve returns the text of a reply: the first choice's message for a
// structured reply, the raw body for an opaque one.
func Resolve(r Reply) (string, error) {
	switch v := r.(type) {
	case StructuredReply:
		if len(v.Response.Choices) == 0 {
			return "", ErrNoChoices
		}
		return v.Response.Choices[0].Message.Content, nil
	case OpaqueReply:
		return v.Body, nil
	default:
		return "", ErrNoReply
	}
}
