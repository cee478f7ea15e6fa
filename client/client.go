package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client - HTTP клиент API управления сотрудниками.
// Все запросы проходят через перехватчик, подставляющий bearer-токен
// и классифицирующий ошибки сессии.
type Client struct {
	baseURL  string
	http     *http.Client
	tokens   TokenStore
	notifier Notifier

	// Auth выполняет вход/выход и даёт доступ к текущему пользователю
	Auth *AuthAPI
	// Employees, Departments, Designations - ресурсные API
	Employees    *ResourceAPI[Employee]
	Departments  *ResourceAPI[Department]
	Designations *ResourceAPI[Designation]
}

// Config - настройки клиента. Пустые поля получают значения по умолчанию.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenStore
	Notifier   Notifier
	// OnUnauthorized вызывается при сбросе сессии по 401
	// (аналог перехода на страницу входа)
	OnUnauthorized func()
}

// New создаёт клиент API
func New(cfg Config) *Client {
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = NewSlogNotifier(slog.Default())
	}

	// Переданный клиент копируется: перехватчик не должен попадать
	// в транспорт, которым пользуется чужой код
	httpClient := &http.Client{}
	if cfg.HTTPClient != nil {
		hc := *cfg.HTTPClient
		httpClient = &hc
	}

	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	httpClient.Transport = &authTransport{
		base:           base,
		tokens:         tokens,
		notifier:       notifier,
		onUnauthorized: cfg.OnUnauthorized,
	}

	c := &Client{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		http:     httpClient,
		tokens:   tokens,
		notifier: notifier,
	}

	c.Auth = newAuthAPI(c)
	c.Employees = newResourceAPI[Employee](c, "/api/EmployeeMaster")
	c.Departments = newResourceAPI[Department](c, "/api/DepartmentMaster")
	c.Designations = newResourceAPI[Designation](c, "/api/DesignationMaster")

	return c
}

// Query - параметры списочного запроса
type Query struct {
	Filter     string
	SortBy     string
	SortOrder  string
	PageNumber int
	PageSize   int
}

func (q Query) values() url.Values {
	values := url.Values{}
	if q.Filter != "" {
		values.Set("filter", q.Filter)
	}
	if q.SortBy != "" {
		values.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		values.Set("sortOrder", q.SortOrder)
	}
	if q.PageNumber > 0 {
		values.Set("pageNumber", strconv.Itoa(q.PageNumber))
	}
	if q.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	return values
}

// do выполняет запрос и разбирает единый конверт ответа.
// Статусы >= 400 превращаются в *AppError с деталями из конверта.
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (*envelope[T], error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &AppError{Message: err.Error()}
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, &AppError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &AppError{Message: err.Error()}
	}
	defer resp.Body.Close()

	var env envelope[T]
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode >= 400 {
		if decodeErr != nil {
			return nil, newAppError[T](resp.StatusCode, nil, http.StatusText(resp.StatusCode))
		}
		return nil, newAppError(resp.StatusCode, &env, http.StatusText(resp.StatusCode))
	}

	if decodeErr != nil {
		return nil, &AppError{Message: fmt.Sprintf("failed to decode response: %v", decodeErr)}
	}
	return &env, nil
}
