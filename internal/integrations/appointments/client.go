package appointments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client talks to the appointment service REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// NewClientWithHTTP allows injecting a custom http.Client, mainly for tests.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// ListForDate returns every appointment of the given calendar day, regardless
// of status. Cancelled and missed entries are included so callers can filter.
func (c *Client) ListForDate(ctx context.Context, date time.Time) ([]Appointment, error) {
	url := fmt.Sprintf("%s/api/v1/appointments?date=%s", c.baseURL, date.Format("2006-01-02"))

	body, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: ListForDate - decode body: %v", ErrInvalidResponse, err)
	}

	return envelope.Data, nil
}

func (c *Client) Create(ctx context.Context, req *CreateRequest) (*Appointment, error) {
	url := c.baseURL + "/api/v1/appointments"

	body, err := c.do(ctx, http.MethodPost, url, req)
	if err != nil {
		return nil, err
	}

	var envelope itemEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: Create - decode body: %v", ErrInvalidResponse, err)
	}

	return &envelope.Data, nil
}

func (c *Client) Update(ctx context.Context, id int64, req *UpdateRequest) (*Appointment, error) {
	url := fmt.Sprintf("%s/api/v1/appointments/%d", c.baseURL, id)

	body, err := c.do(ctx, http.MethodPut, url, req)
	if err != nil {
		return nil, err
	}

	var envelope itemEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: Update - decode body: %v", ErrInvalidResponse, err)
	}

	return &envelope.Data, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id int64, status string) (*Appointment, error) {
	url := fmt.Sprintf("%s/api/v1/appointments/%d/status", c.baseURL, id)

	body, err := c.do(ctx, http.MethodPut, url, &UpdateStatusRequest{Status: status})
	if err != nil {
		return nil, err
	}

	var envelope itemEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - decode body: %v", ErrInvalidResponse, err)
	}

	return &envelope.Data, nil
}

func (c *Client) History(ctx context.Context, page, limit int) (*HistoryPage, error) {
	url := c.baseURL + "/api/v1/appointments/history?page=" + strconv.Itoa(page)
	if limit > 0 {
		url += "&limit=" + strconv.Itoa(limit)
	}

	body, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var envelope historyEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: History - decode body: %v", ErrInvalidResponse, err)
	}

	return &HistoryPage{
		Appointments: envelope.Data,
		TotalPages:   envelope.TotalPages,
	}, nil
}

func (c *Client) do(ctx context.Context, method, url string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: do - marshal request: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: do - build request: %v", ErrInternal, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: do - execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: do - read body: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	return nil, c.mapError(resp.StatusCode, body)
}

// mapError converts an error response into a typed sentinel, keeping the
// server-provided message so UIs can surface it verbatim.
func (c *Client) mapError(statusCode int, body []byte) error {
	var envelope errorEnvelope
	_ = json.Unmarshal(body, &envelope)
	msg := envelope.Error
	if msg == "" {
		msg = http.StatusText(statusCode)
	}

	switch statusCode {
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrSlotConflict, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrAppointmentNotFound, msg)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrInternal, statusCode, msg)
	}
}
