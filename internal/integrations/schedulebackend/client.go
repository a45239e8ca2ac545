package schedulebackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hallhub/SHB-ScheduleService/internal/domain"
)

// TokenSource выдает bearer-токен текущей сессии.
// Пустой токен означает, что пользователь не аутентифицирован.
type TokenSource interface {
	Token() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client REST-клиент бэкенда расписаний, используется редактором расписания
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        Logger
}

// NewClient создает новый экземпляр клиента бэкенда расписаний
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		log:    log,
	}
}

// GetHallSchedule получает расписание зала.
// Пустой список означает, что расписание еще не настроено.
func (c *Client) GetHallSchedule(ctx context.Context, hallID int64) ([]domain.DaySchedule, error) {
	url := fmt.Sprintf("%s/api/v1/schedules/hall/%d", c.baseURL, hallID)

	req, err := c.newRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var records []DayScheduleRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return RecordsToDomain(hallID, records), nil
}

// SaveHallSchedule отправляет полное недельное расписание как bulk replace
// и возвращает сохраненные записи (идентификаторы могут измениться).
func (c *Client) SaveHallSchedule(ctx context.Context, hallID int64, days []domain.DaySchedule) ([]domain.DaySchedule, error) {
	url := fmt.Sprintf("%s/api/v1/schedules/hall/%d", c.baseURL, hallID)

	body, err := json.Marshal(RecordsFromDomain(days))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var records []DayScheduleRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return RecordsToDomain(hallID, records), nil
}

// newRequest готовит запрос с bearer-токеном.
// Без токена запрос не создается и сеть не трогается.
func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	token := c.tokens.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	return req, nil
}

// checkStatus маппит статус-коды бэкенда на ошибки клиента.
// Сообщение сервера сохраняется в тексте ошибки, чтобы показать его пользователю.
func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusBadRequest:
		if msg := serverMessage(resp); msg != "" {
			return fmt.Errorf("%w: %s", ErrBadRequest, msg)
		}
		return ErrBadRequest
	default:
		if msg := serverMessage(resp); msg != "" {
			return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, msg)
		}
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}
}

func serverMessage(resp *http.Response) string {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(body)
}
