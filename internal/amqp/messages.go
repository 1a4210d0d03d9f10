package amqp

import (
	"encoding/json"
	"time"
)

// Change operations carried on the wire.
const (
	OpCreated = "created"
	OpUpdated = "updated"
	OpDeleted = "deleted"
)

// EntryChangeMessage announces that a ledger entry changed. It carries only
// the entry ID and the operation; consumers fetch whatever detail they need.
type EntryChangeMessage struct {
	ID        string    `json:"id"`
	Op        string    `json:"op"`
	Timestamp time.Time `json:"timestamp"`
}

func NewEntryChangeMessage(id, op string) *EntryChangeMessage {
	return &EntryChangeMessage{
		ID:        id,
		Op:        op,
		Timestamp: time.Now(),
	}
}

func (m *EntryChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func EntryChangeMessageFromJSON(data []byte) (*EntryChangeMessage, error) {
	var msg EntryChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
