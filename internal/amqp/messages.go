package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Change actions carried in ChangeMessage.Action.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
	ActionUpdate = "update"
)

// ChangeMessage announces that a collection was changed and saved. It carries
// no record contents; consumers reload from storage.
type ChangeMessage struct {
	ID         string    `json:"id"`
	Collection string    `json:"collection"`
	Action     string    `json:"action"`
	Count      int       `json:"count"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewChangeMessage creates a message with a fresh ID
func NewChangeMessage(collection, action string, count int) *ChangeMessage {
	return &ChangeMessage{
		ID:         uuid.NewString(),
		Collection: collection,
		Action:     action,
		Count:      count,
		Timestamp:  time.Now().UTC(),
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
