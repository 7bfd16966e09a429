package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inkwell-hq/inkwell_backend/config"
)

// httpDirectory reads accounts and clients from the identity/CRM HTTP APIs.
type httpDirectory struct {
	accountsBase string
	clientsBase  string
	token        string
	http         *http.Client
}

func NewHTTP(cfg config.DirectoryConfig) Directory {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpDirectory{
		accountsBase: strings.TrimRight(cfg.AccountsBaseURL, "/"),
		clientsBase:  strings.TrimRight(cfg.ClientsBaseURL, "/"),
		token:        cfg.APIToken,
		http:         &http.Client{Timeout: timeout},
	}
}

func (d *httpDirectory) Account(ctx context.Context, id uuid.UUID) (*Account, error) {
	var acct Account
	url := fmt.Sprintf("%s/internal/accounts/%s", d.accountsBase, id)
	if err := d.getJSON(ctx, url, &acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

func (d *httpDirectory) Client(ctx context.Context, id uuid.UUID) (*Client, error) {
	if d.clientsBase == "" {
		return nil, ErrNotFound
	}
	var cl Client
	url := fmt.Sprintf("%s/internal/clients/%s", d.clientsBase, id)
	if err := d.getJSON(ctx, url, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

func (d *httpDirectory) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if d.token != "" {
		req.Header.Set("Authorization", "Bearer "+d.token)
	}

	resp, err := d.http.Do(req)
	if err != nil {
		return fmt.Errorf("directory request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("directory request %s: unexpected status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode directory response: %w", err)
	}
	return nil
}
