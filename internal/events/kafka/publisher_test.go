package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/transaction-balances-services/internal/models"
	"github.com/sheikh-saqib/transaction-balances-services/internal/models/events"
)

func TestNewMessageKeysByAccount(t *testing.T) {
	event := events.NewTransactionRecorded(models.Transaction{
		ID:        "tx-1",
		AccountID: "ACC1",
		Amount:    decimal.RequireFromString("12.50"),
		Currency:  "USD",
		Type:      models.TransactionTypePayment,
		Status:    models.TransactionStatusFailed,
		CreatedAt: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
	})

	msg, err := newMessage(events.TransactionRecordedTopic, event)
	if err != nil {
		t.Fatalf("newMessage: %v", err)
	}
	if msg.Topic != events.TransactionRecordedTopic {
		t.Errorf("topic = %s", msg.Topic)
	}
	if string(msg.Key) != "ACC1" {
		t.Errorf("key = %q, want ACC1", msg.Key)
	}

	var decoded map[string]any
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatalf("decode value: %v", err)
	}
	if decoded["transactionId"] != "tx-1" || decoded["status"] != "FAILED" || decoded["type"] != "PAYMENT" {
		t.Errorf("value = %s", msg.Value)
	}
}

func TestNewMessageWithoutKey(t *testing.T) {
	msg, err := newMessage("misc", map[string]string{"hello": "world"})
	if err != nil {
		t.Fatalf("newMessage: %v", err)
	}
	if msg.Key != nil {
		t.Errorf("key = %q, want none", msg.Key)
	}
}

func TestNewMessageRejectsUnencodableEvent(t *testing.T) {
	if _, err := newMessage("misc", make(chan int)); err == nil {
		t.Fatal("expected an encoding error")
	}
}
