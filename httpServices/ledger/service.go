package ledger

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to the legacy booking ledger. Reads degrade to an empty
// list at the call site and writes are fire-and-forget, so the client
// carries no retry configuration.
type Client struct {
	httpClient *resty.Client
}

func NewClient(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{httpClient: client}
}

// ListEntries fetches every booking row the legacy ledger holds.
func (c *Client) ListEntries() ([]Entry, error) {
	var out ListResponse
	resp, err := c.httpClient.R().
		SetResult(&out).
		Get("/api/bookings")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("legacy ledger returned non-OK status: %s", resp.Status())
	}
	return out.Data, nil
}

// MirrorBooking writes a copy of a canonical booking into the legacy
// ledger.
func (c *Client) MirrorBooking(req MirrorRequest) error {
	resp, err := c.httpClient.R().
		SetBody(req).
		Post("/api/bookings")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("legacy ledger returned non-OK status: %s", resp.Status())
	}
	return nil
}
