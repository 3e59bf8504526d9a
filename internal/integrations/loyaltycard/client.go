package loyaltycard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент сервиса карт постоянного клиента
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCard запрашивает карту по номеру
func (c *Client) GetCard(ctx context.Context, cardNumber string) (*Card, error) {
	u := fmt.Sprintf("%s/internal/loyalty-cards/%s", c.baseURL, url.PathEscape(cardNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		// неизвестная карта - не ошибка, а отрицательный результат
		return &Card{Number: cardNumber, Valid: false}, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var card Card
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &card, nil
}

// Validate проверяет карту с graceful degradation.
// При недоступности сервиса возвращает ErrServiceDegraded.
func (c *Client) Validate(ctx context.Context, cardNumber string) (bool, error) {
	if !HasValidChecksum(cardNumber) {
		c.log.Info("Loyalty card rejected by checksum")
		return false, nil
	}

	card, err := c.GetCard(ctx, cardNumber)
	if err != nil {
		c.log.Error("Loyalty card service unavailable, applying graceful degradation: %v", err)
		return false, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	c.log.Info("Loyalty card checked, valid=%t", card.Valid)
	return card.Valid, nil
}
