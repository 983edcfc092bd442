package amqp

import (
	"encoding/json"
	"time"

	"ggmoney/internal/store"
)

// ChangeMessage is a compact notification that one mutation completed.
// ExpenseID is zero for scalar mutations (budget, savings, goal, period);
// consumers that need the new state read it from the application, the
// message only says that something changed.
type ChangeMessage struct {
	Kind      string    `json:"kind"`
	ExpenseID int64     `json:"expense_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChangeMessage builds a message from a store event.
func NewChangeMessage(ev store.Event) *ChangeMessage {
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	return &ChangeMessage{
		Kind:      string(ev.Kind),
		ExpenseID: ev.ExpenseID,
		Timestamp: at,
	}
}

// ToJSON converts the message to JSON bytes
func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ChangeMessageFromJSON creates a message from JSON bytes
func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
