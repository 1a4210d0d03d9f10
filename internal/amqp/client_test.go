package amqp

import (
	"testing"
	"time"
)

func TestNewEntryChangeMessage(t *testing.T) {
	msg := NewEntryChangeMessage("abc-123", OpCreated)

	if msg.ID != "abc-123" {
		t.Errorf("NewEntryChangeMessage() ID = %v, want abc-123", msg.ID)
	}
	if msg.Op != OpCreated {
		t.Errorf("NewEntryChangeMessage() Op = %v, want %v", msg.Op, OpCreated)
	}
	if msg.Timestamp.IsZero() {
		t.Error("NewEntryChangeMessage() Timestamp should not be zero")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Error("NewEntryChangeMessage() Timestamp should be recent")
	}
}

func TestEntryChangeMessage_JSON(t *testing.T) {
	timestamp := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	msg := &EntryChangeMessage{
		ID:        "abc-123",
		Op:        OpUpdated,
		Timestamp: timestamp,
	}

	jsonBytes, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsedMsg, err := EntryChangeMessageFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("EntryChangeMessageFromJSON() error = %v", err)
	}

	if parsedMsg.ID != msg.ID {
		t.Errorf("Parsed ID = %v, want %v", parsedMsg.ID, msg.ID)
	}
	if parsedMsg.Op != msg.Op {
		t.Errorf("Parsed Op = %v, want %v", parsedMsg.Op, msg.Op)
	}
	if !parsedMsg.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("Parsed Timestamp = %v, want %v", parsedMsg.Timestamp, msg.Timestamp)
	}
}

func TestEntryChangeMessage_InvalidJSON(t *testing.T) {
	invalidJSON := []byte(`{"id": 42, "op": ["created"]}`)

	_, err := EntryChangeMessageFromJSON(invalidJSON)
	if err == nil {
		t.Error("EntryChangeMessageFromJSON() should fail with invalid JSON")
	}
}
