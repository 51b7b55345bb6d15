package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/akhmetovr/go-grid-keeper/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig configures the REST implementation of [DriverClient].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpDriverClient struct {
	client *resty.Client
}

// NewHTTPDriverClient builds a [DriverClient] speaking the driver service
// REST API. Zero-value config fields fall back to sensible defaults.
func NewHTTPDriverClient(cfg HTTPClientConfig) DriverClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpDriverClient{client: cli}
}

// listResponse is the paged envelope returned by GET /api/drivers.
type listResponse struct {
	Drivers []models.Driver `json:"drivers"`
	Total   int             `json:"total"`
	HasMore bool            `json:"hasMore"`
}

func (h *httpDriverClient) List(ctx context.Context, filter models.ListFilter, sort models.ListSort) ([]models.Driver, error) {
	req := h.client.R().SetContext(ctx)

	if filter.Team != "" {
		req.SetQueryParam("team", filter.Team)
	}
	if filter.Name != "" {
		req.SetQueryParam("name", filter.Name)
	}
	if filter.MinWins != nil {
		req.SetQueryParam("minWins", strconv.Itoa(*filter.MinWins))
	}
	if filter.Skip > 0 {
		req.SetQueryParam("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(filter.Limit))
	}
	if sort.By != "" {
		req.SetQueryParam("sortBy", sort.By)
		if sort.Order != "" {
			req.SetQueryParam("sortOrder", string(sort.Order))
		}
	}

	resp, err := req.Get("/api/drivers")
	if err != nil {
		return nil, fmt.Errorf("list request: %w: %v", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lr listResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	return lr.Drivers, nil
}

func (h *httpDriverClient) Get(ctx context.Context, id string) (models.Driver, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get("/api/drivers/{id}")
	if err != nil {
		return models.Driver{}, fmt.Errorf("get request: %w: %v", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Driver{}, err
	}

	return decodeDriver(resp.Body())
}

func (h *httpDriverClient) Create(ctx context.Context, payload models.DriverPayload) (models.Driver, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/api/drivers")
	if err != nil {
		return models.Driver{}, fmt.Errorf("create request: %w: %v", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Driver{}, err
	}

	return decodeDriver(resp.Body())
}

func (h *httpDriverClient) Update(ctx context.Context, id string, patch models.DriverPatch) (models.Driver, error) {
	body := struct {
		ID string `json:"id"`
		models.DriverPatch
	}{ID: id, DriverPatch: patch}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Patch("/api/drivers")
	if err != nil {
		return models.Driver{}, fmt.Errorf("update request: %w: %v", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Driver{}, err
	}

	return decodeDriver(resp.Body())
}

func (h *httpDriverClient) Delete(ctx context.Context, id string) (models.Driver, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("id", id).
		Delete("/api/drivers")
	if err != nil {
		return models.Driver{}, fmt.Errorf("delete request: %w: %v", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Driver{}, err
	}

	return decodeDriver(resp.Body())
}

func (h *httpDriverClient) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/health")
	if err != nil {
		return fmt.Errorf("health request: %w: %v", ErrUnreachable, err)
	}

	return mapHTTPError(resp)
}

func decodeDriver(body []byte) (models.Driver, error) {
	var d models.Driver
	if err := json.Unmarshal(body, &d); err != nil {
		return models.Driver{}, fmt.Errorf("decode driver response: %w", err)
	}
	return d, nil
}

// mapHTTPError translates a non-2xx response into one of the package
// sentinels, preserving the service's error message when the body carries
// one.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())
	if msg == "" {
		msg = http.StatusText(code)
	}

	switch {
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrInvalid, msg)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrUnreachable, code, msg)
	default:
		return fmt.Errorf("http %d: %s", code, msg)
	}
}

// errorMessage extracts the "error" field of a JSON error body, falling back
// to the raw body text.
func errorMessage(body []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return strings.TrimSpace(string(body))
}
