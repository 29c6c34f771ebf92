package balances

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	interfaces "github.com/sheikh-saqib/transaction-balances-services/internal/interfaces"
	"github.com/sheikh-saqib/transaction-balances-services/internal/ledger"
	"github.com/sheikh-saqib/transaction-balances-services/internal/models"
	"github.com/sheikh-saqib/transaction-balances-services/internal/tracing"
)

const (
	DefaultBaseURL = "http://localhost:8081/api/balances"
	DefaultTimeout = 5 * time.Second
)

// Client queries the balances service over HTTP. Any failure to get a usable
// balance is reported as ledger.ErrBalanceUnavailable, never as a low balance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) GetBalance(ctx context.Context, accountId string) (models.AccountBalance, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(accountId)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.AccountBalance{}, fmt.Errorf("%w: build request: %v", ledger.ErrBalanceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	tracing.Inject(ctx, req.Header)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.AccountBalance{}, fmt.Errorf("%w: %v", ledger.ErrBalanceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.AccountBalance{}, fmt.Errorf("%w: balances service returned %d", ledger.ErrBalanceUnavailable, resp.StatusCode)
	}

	var body balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.AccountBalance{}, fmt.Errorf("%w: decode balance: %v", ledger.ErrBalanceUnavailable, err)
	}
	if body.AvailableBalance == nil {
		return models.AccountBalance{}, fmt.Errorf("%w: response for account %s has no availableBalance", ledger.ErrBalanceUnavailable, accountId)
	}

	balance := models.AccountBalance{
		AccountNumber:    body.AccountNumber,
		AvailableBalance: *body.AvailableBalance,
		CurrentBalance:   *body.AvailableBalance,
		Currency:         body.Currency,
		LastUpdated:      body.LastUpdated,
	}
	if body.CurrentBalance != nil {
		balance.CurrentBalance = *body.CurrentBalance
	}
	return balance, nil
}

// balanceResponse is the wire form of models.AccountBalance; pointers tell a
// missing amount apart from zero
type balanceResponse struct {
	AccountNumber    string           `json:"accountNumber"`
	AvailableBalance *decimal.Decimal `json:"availableBalance"`
	CurrentBalance   *decimal.Decimal `json:"currentBalance"`
	Currency         string           `json:"currency"`
	LastUpdated      time.Time        `json:"lastUpdated"`
}

var _ interfaces.BalanceOracle = (*Client)(nil)
