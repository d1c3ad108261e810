package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RateSource fetches the full rate table for one base currency.
type RateSource interface {
	Rates(ctx context.Context, base string) (map[string]float64, error)
}

// OpenERClient talks to the free open.er-api.com rate endpoint.
type OpenERClient struct {
	baseURL string
	client  *http.Client
}

func NewOpenERClient() *OpenERClient {
	return &OpenERClient{
		baseURL: "https://open.er-api.com/v6/latest",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *OpenERClient) Rates(ctx context.Context, base string) (map[string]float64, error) {
	if base == "" {
		return nil, errors.New("empty base currency")
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate api error: status %d", resp.StatusCode)
	}

	var result struct {
		Result string             `json:"result"`
		Rates  map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	if len(result.Rates) == 0 {
		return nil, errors.New("empty rate table")
	}

	return result.Rates, nil
}
