package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"truetickets/internal/usecase/interfaces"
)

const defaultBaseURL = "https://my.link"

// RepairShoprClient talks to the legacy ticketing vendor's REST API
// during migration. Tickets resolve through GET /tickets?number=N and
// come back wrapped in a {"ticket": ...} envelope.
//
// Migration fetches authenticate with MIGRATION_API_KEY, falling back
// to the general REPAIRSHOPR_API_KEY when unset.
type RepairShoprClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ interfaces.IUpstreamClient = (*RepairShoprClient)(nil)

func NewRepairShoprClient() *RepairShoprClient {
	base := os.Getenv("REPAIRSHOPR_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	key := os.Getenv("MIGRATION_API_KEY")
	if key == "" {
		key = os.Getenv("REPAIRSHOPR_API_KEY")
	}
	return &RepairShoprClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    base,
		apiKey:     key,
	}
}

func (c *RepairShoprClient) FetchTicketByNumber(ctx context.Context, number int64) (interfaces.UpstreamTicket, error) {
	url := fmt.Sprintf("%s/tickets?number=%d", c.baseURL, number)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return interfaces.UpstreamTicket{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return interfaces.UpstreamTicket{}, fmt.Errorf("fetch ticket %d: %w", number, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return interfaces.UpstreamTicket{}, fmt.Errorf("upstream returned status %d for ticket %d", resp.StatusCode, number)
	}

	var envelope struct {
		Ticket interfaces.UpstreamTicket `json:"ticket"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return interfaces.UpstreamTicket{}, fmt.Errorf("decode ticket %d: %w", number, err)
	}
	if envelope.Ticket.Number != number {
		return interfaces.UpstreamTicket{}, fmt.Errorf("upstream returned ticket %d, requested %d", envelope.Ticket.Number, number)
	}
	return envelope.Ticket, nil
}

func (c *RepairShoprClient) DownloadAttachment(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "*/*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("attachment download returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
