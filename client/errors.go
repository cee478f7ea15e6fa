package client

import (
	"fmt"
	"strconv"
)

// AppError - структурированная ошибка API: код, сообщение и
// необязательные ошибки по отдельным полям
type AppError struct {
	Code    string
	Message string
	Details map[string][]string
}

func (e *AppError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// newAppError строит AppError из конверта ответа и HTTP статуса
func newAppError[T any](status int, env *envelope[T], defaultMessage string) *AppError {
	appErr := &AppError{
		Code:    strconv.Itoa(status),
		Message: defaultMessage,
	}
	if env != nil {
		if env.Message != "" {
			appErr.Message = env.Message
		}
		appErr.Details = env.Details
	}
	return appErr
}

// asAppError приводит произвольную ошибку к AppError
func asAppError(err error, defaultMessage string) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return &AppError{Message: defaultMessage}
}
