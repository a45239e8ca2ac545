package hallservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с HallService (справочник залов и их менеджеров)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента HallService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetHall получает зал по ID.
// Используется для проверки существования зала и прав менеджера,
// поэтому недоступность HallService не деградирует, а возвращается как ошибка.
func (c *Client) GetHall(ctx context.Context, hallID int64) (*Hall, error) {
	url := fmt.Sprintf("%s/internal/halls/%d", c.baseURL, hallID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid hall ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrHallNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var hall Hall
	if err := json.NewDecoder(resp.Body).Decode(&hall); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &hall, nil
}

// IsManager проверяет, что пользователь является менеджером зала
func (h *Hall) IsManager(userID int64) bool {
	for _, managerID := range h.ManagerIDs {
		if managerID == userID {
			return true
		}
	}
	return false
}
