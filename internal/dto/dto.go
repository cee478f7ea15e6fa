package dto

// LoginRequest - запрос на вход по email и паролю
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - данные успешного входа
type LoginResponse struct {
	Token string `json:"token"`
}
