// Package remote implements the ledger adapter backed by the MoneyViewer
// HTTP API, plus the authentication calls the session gate needs. The
// server is authoritative: callers re-list after mutations instead of
// trusting optimistic local state.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/Yashuu213/MoneyViewer/internal/models"
)

// Client communicates with the MoneyViewer API using a bearer token
// obtained from Login or supplied via SetToken.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	token string
}

// New creates a new API client. A nil httpClient falls back to
// http.DefaultClient; timeouts belong to the transport layer, so callers
// wanting deadlines should pass a configured client.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// SetToken installs a previously saved bearer token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token, empty when logged out.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Authoritative is true: the server assigns and rewrites record fields, so
// stores must re-list after each create.
func (c *Client) Authoritative() bool { return true }

// LoadTransactions fetches the caller's transactions, newest first.
func (c *Client) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	var result struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/transactions", nil, &result, http.StatusOK); err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return result.Transactions, nil
}

// LoadDebts fetches the caller's debts, newest first.
func (c *Client) LoadDebts(ctx context.Context) ([]models.Debt, error) {
	var result struct {
		Debts []models.Debt `json:"debts"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/debts", nil, &result, http.StatusOK); err != nil {
		return nil, fmt.Errorf("listing debts: %w", err)
	}
	return result.Debts, nil
}

// CreateTransaction submits a new transaction record. The server's 201 body
// is the stored record; it is decoded back into tx so server-assigned fields
// (id, timestamps) replace the optimistic local ones.
func (c *Client) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if err := c.do(ctx, http.MethodPost, "/api/v1/transactions", tx, tx, http.StatusCreated); err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes a transaction by id. The server treats unknown
// ids as already deleted.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/v1/transactions/"+id, nil, nil, http.StatusNoContent); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}
	return nil
}

// CreateDebt submits a new debt record. As with CreateTransaction, the
// record is updated in place from the server's response.
func (c *Client) CreateDebt(ctx context.Context, debt *models.Debt) error {
	if err := c.do(ctx, http.MethodPost, "/api/v1/debts", debt, debt, http.StatusCreated); err != nil {
		return fmt.Errorf("creating debt: %w", err)
	}
	return nil
}

// DeleteDebt removes a debt by id.
func (c *Client) DeleteDebt(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/v1/debts/"+id, nil, nil, http.StatusNoContent); err != nil {
		return fmt.Errorf("deleting debt: %w", err)
	}
	return nil
}

// CheckSession asks the server whether the current token still names a
// valid session.
func (c *Client) CheckSession(ctx context.Context) (string, bool, error) {
	var result struct {
		Authenticated bool   `json:"authenticated"`
		Username      string `json:"username"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/session", nil, &result, http.StatusOK); err != nil {
		return "", false, fmt.Errorf("checking session: %w", err)
	}
	return result.Username, result.Authenticated, nil
}

// Login authenticates and stores the returned bearer token on the client.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var result struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", body, &result, http.StatusOK); err != nil {
		return "", fmt.Errorf("logging in: %w", err)
	}

	c.SetToken(result.Token)
	return result.User.Username, nil
}

// Register creates a new account. It does not log in: the session gate
// keeps registration and authentication separate.
func (c *Client) Register(ctx context.Context, username, password string) error {
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", body, nil, http.StatusCreated); err != nil {
		return fmt.Errorf("registering: %w", err)
	}
	return nil
}

// Logout tells the server to end the session and drops the local token
// regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil, http.StatusOK)
	c.SetToken("")
	if err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	return nil
}

// do performs one JSON round-trip. A response status other than wantStatus
// is an error carrying the server's message when one is present.
func (c *Client) do(ctx context.Context, method, path string, body, out any, wantStatus int) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		return apiError(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// apiError extracts the structured error body the server emits, falling
// back to the bare status code.
func apiError(resp *http.Response) error {
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error.Message != "" {
		return fmt.Errorf("%s (status %d)", body.Error.Message, resp.StatusCode)
	}
	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}
