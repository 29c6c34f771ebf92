package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance is a point-in-time view of an account's funds.
// CurrentBalance includes uncleared amounts and is never below AvailableBalance.
type AccountBalance struct {
	AccountNumber    string          `json:"accountNumber"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	CurrentBalance   decimal.Decimal `json:"currentBalance"`
	Currency         string          `json:"currency"`
	LastUpdated      time.Time       `json:"lastUpdated"`
}

// MarshalJSON writes both balances as JSON numbers with exactly two decimal
// places, so 12000 goes out as 12000.00
func (b AccountBalance) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		AccountNumber    string          `json:"accountNumber"`
		AvailableBalance json.RawMessage `json:"availableBalance"`
		CurrentBalance   json.RawMessage `json:"currentBalance"`
		Currency         string          `json:"currency"`
		LastUpdated      time.Time       `json:"lastUpdated"`
	}{
		AccountNumber:    b.AccountNumber,
		AvailableBalance: json.RawMessage(b.AvailableBalance.StringFixed(2)),
		CurrentBalance:   json.RawMessage(b.CurrentBalance.StringFixed(2)),
		Currency:         b.Currency,
		LastUpdated:      b.LastUpdated,
	})
}
