package client

import (
	"context"
	"sync"
)

const (
	coachGreeting       = "Hi! I'm your wellness coach. Ask me anything about your habits, sleep, or hydration."
	coachFailureMessage = "Sorry, I couldn't reach the coach right now. Please try again in a moment."

	// coachHistoryWindow is how many prior messages ride along with each
	// question. Older turns are dropped client-side.
	coachHistoryWindow = 6
)

// CoachChat holds one conversation with the wellness coach. The transcript
// only ever grows; failures surface as an apologetic coach message instead
// of an empty gap in the conversation.
type CoachChat struct {
	client *Client
	userID int64

	mu       sync.Mutex
	messages []ChatMessage
	busy     bool
}

// NewCoachChat seeds the transcript with the coach's greeting.
func NewCoachChat(client *Client, userID int64) *CoachChat {
	return &CoachChat{
		client:   client,
		userID:   userID,
		messages: []ChatMessage{{Role: RoleModel, Content: coachGreeting}},
	}
}

// Messages returns a copy of the transcript, oldest first.
func (c *CoachChat) Messages() []ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ChatMessage(nil), c.messages...)
}

// Busy reports whether a question is currently in flight.
func (c *CoachChat) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Send appends the user's message, asks the coach, and appends the reply.
// The history sent to the server is the window of messages before the
// current one. Only one question runs at a time; extra sends while busy are
// dropped.
func (c *CoachChat) Send(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return nil
	}
	c.busy = true

	history := c.messages
	if len(history) > coachHistoryWindow {
		history = history[len(history)-coachHistoryWindow:]
	}
	history = append([]ChatMessage(nil), history...)

	c.messages = append(c.messages, ChatMessage{Role: RoleUser, Content: text})
	c.mu.Unlock()

	answer, err := c.client.AskCoach(ctx, c.userID, text, history)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
	if err != nil {
		reply := coachFailureMessage
		if detail, ok := ErrorDetail(err); ok {
			reply = detail
		}
		c.messages = append(c.messages, ChatMessage{Role: RoleModel, Content: reply})
		return err
	}
	c.messages = append(c.messages, ChatMessage{Role: RoleModel, Content: answer})
	return nil
}
