package press

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/armandopadilla/lasttimei-lamdbda/internal/domain/model"
	"github.com/armandopadilla/lasttimei-lamdbda/pkg/logger"
)

type recordedResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HTTPClient talks to the local button API.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

// NewHTTPClient creates a client for baseURL.
func NewHTTPClient(baseURL string, c *http.Client) *HTTPClient {
	if c == nil {
		c = http.DefaultClient
	}
	return &HTTPClient{client: c, baseURL: baseURL}
}

func (c *HTTPClient) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

func (c *HTTPClient) post(ctx context.Context, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// Press submits one button event and classifies the answer.
func (c *HTTPClient) Press(ctx context.Context, ev model.ButtonEvent) Result {
	res := Result{SerialNumber: ev.SerialNumber, Outcome: OutcomeFailed}

	resp, err := c.post(ctx, "/events", ev)
	if err != nil {
		res.Message = err.Error()
		return res
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		res.Message = err.Error()
		return res
	}

	switch resp.StatusCode {
	case http.StatusCreated:
		var ok recordedResponse
		if err := json.Unmarshal(body, &ok); err != nil {
			res.Message = err.Error()
			return res
		}
		res.Outcome = OutcomeRecorded
		res.ID = ok.ID
		return res
	case http.StatusNotFound:
		res.Outcome = OutcomeUnregistered
	case http.StatusBadGateway:
		res.Outcome = OutcomeStoreError
	}

	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		res.Message = e.Message
	} else {
		res.Message = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	return res
}

// Get reads back a recorded press.
func (c *HTTPClient) Get(ctx context.Context, id string) (model.ActionRecord, error) {
	resp, err := c.get(ctx, "/events/"+id)
	if err != nil {
		return model.ActionRecord{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.ActionRecord{}, fmt.Errorf("%w: %s returned status %d", ErrUnexpectedStatus, id, resp.StatusCode)
	}
	var rec model.ActionRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return model.ActionRecord{}, fmt.Errorf("failed to decode record: %w", err)
	}
	return rec, nil
}

// Healthy checks GET /healthz.
func (c *HTTPClient) Healthy(ctx context.Context) error {
	resp, err := c.get(ctx, "/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: healthz returned %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}

// submitPresses fans events out to a fixed pool of workers.
func submitPresses(ctx context.Context, cfg *Config, client *HTTPClient, events []model.ButtonEvent) []Result {
	log := logger.Named("press")

	jobs := make(chan model.ButtonEvent, cfg.Workers*WorkerChannelMultiplier)
	results := make(chan Result, len(events))
	var wg sync.WaitGroup

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ev := range jobs {
				r := client.Press(ctx, ev)
				if cfg.Verbose {
					log.Info(ctx, "press submitted",
						logger.String("serial_number", r.SerialNumber),
						logger.String("outcome", string(r.Outcome)),
						logger.String("id", r.ID),
						logger.String("message", r.Message))
				}
				results <- r
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, ev := range events {
			select {
			case <-ctx.Done():
				return
			case jobs <- ev:
			}
		}
	}()

	wg.Wait()
	close(results)

	out := make([]Result, 0, len(events))
	for r := range results {
		out = append(out, r)
	}
	return out
}
