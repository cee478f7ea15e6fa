package client

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User - текущий пользователь, восстановленный из claims токена
type User struct {
	UserID int64
	Email  string
}

// AuthAPI управляет сессией: вход, выход, текущий пользователь
type AuthAPI struct {
	c *Client
}

func newAuthAPI(c *Client) *AuthAPI {
	a := &AuthAPI{c: c}

	// Просроченный сохранённый токен сбрасывается при создании клиента
	if token := c.tokens.Token(); token != "" && isTokenExpired(token) {
		a.Logout()
	}
	return a
}

// Login выполняет вход и сохраняет токен при успехе
func (a *AuthAPI) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}

	env, err := do[loginData](ctx, a.c, http.MethodPost, "/api/Auth/login", nil, body)
	if err != nil {
		return err
	}

	if env.Data.Token == "" {
		return &AppError{Message: "login response did not contain a token"}
	}
	return a.c.tokens.Save(env.Data.Token)
}

// Logout удаляет сохранённый токен
func (a *AuthAPI) Logout() {
	_ = a.c.tokens.Clear()
}

// IsAuthenticated сообщает, есть ли действующая сессия
func (a *AuthAPI) IsAuthenticated() bool {
	token := a.c.tokens.Token()
	return token != "" && !isTokenExpired(token)
}

// CurrentUser восстанавливает пользователя из claims сохранённого токена.
// Подпись не проверяется - клиент не владеет ключом, токен проверяет сервер.
func (a *AuthAPI) CurrentUser() (*User, bool) {
	token := a.c.tokens.Token()
	if token == "" || isTokenExpired(token) {
		return nil, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}

	user := &User{}
	if sub, err := claims.GetSubject(); err == nil {
		user.UserID, _ = strconv.ParseInt(sub, 10, 64)
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	return user, true
}

func isTokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().After(exp.Time)
}
