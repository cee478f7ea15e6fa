package client

import (
	"net/http"
	"strings"
)

// authTransport - сквозной перехватчик всех исходящих запросов.
// Подставляет bearer-токен и классифицирует ошибки ответов:
// 401 (кроме самого входа) сбрасывает сессию, 403 и 500 дают
// уведомления. Ошибка всегда доходит до вызывающего кода.
type authTransport struct {
	base           http.RoundTripper
	tokens         TokenStore
	notifier       Notifier
	onUnauthorized func()
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.tokens.Token(); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// Неудачный вход не сбрасывает сессию - компонент входа
		// обрабатывает ошибку сам
		if strings.Contains(req.URL.Path, "/Auth/login") {
			break
		}
		t.notifier.Warning("Unauthorized", "Session expired. Please login again.")
		_ = t.tokens.Clear()
		if t.onUnauthorized != nil {
			t.onUnauthorized()
		}
	case http.StatusForbidden:
		t.notifier.Error("Forbidden", "You do not have permission to perform this action.")
	case http.StatusInternalServerError:
		t.notifier.Error("Server Error", "Internal Server Error. Please try again later.")
	}

	return resp, nil
}
