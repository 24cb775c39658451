package marketplace_api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

// Client - HTTP-клиент REST API маркетплейса. Реализует все *APIPort из core/port.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *Client) doRequest(ctx context.Context, method, path, token string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// call выполняет запрос, проверяет статус и декодирует ответ в out (если out != nil).
// notFound - доменная ошибка для 404.
func (c *Client) call(ctx context.Context, logger port.LoggerPort, method, path, token string, body, out interface{}, notFound error) error {
	logger.Debug("Sending request to marketplace API", port.Fields{"http_method": method, "path": path})

	resp, err := c.doRequest(ctx, method, path, token, body)
	if err != nil {
		logger.Error("Failed to perform request to marketplace API", err, nil)
		return fmt.Errorf("marketplace api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &domain.APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
		logger.Error("Received error response from marketplace API", apiErr, port.Fields{"status_code": resp.StatusCode})
		if resp.StatusCode == http.StatusNotFound && notFound != nil {
			return fmt.Errorf("%w: %w", notFound, apiErr)
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		logger.Error("Failed to decode response from marketplace API", err, nil)
		return fmt.Errorf("failed to decode marketplace api response: %w", err)
	}
	return nil
}

// readErrorMessage достает message/error из JSON-тела ошибки, иначе возвращает тело как есть.
func readErrorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 64<<10))
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(raw))
}

func (c *Client) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "MarketplaceApiClient",
		"method":    method,
	})
}
