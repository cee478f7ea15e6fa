package dto

// Коды ошибок, возвращаемые в поле errorCode конверта
const (
	ErrCodeValidation = 40001
	ErrCodeNotFound   = 40401
	ErrCodeInternal   = 50001
)

// Стандартные сообщения об ошибках
const (
	MsgValidationError = "One or more validation errors occurred."
	MsgNotFound        = "The requested resource was not found."
	MsgInternalError   = "An internal server error has occurred."
)

// Response - единый конверт для всех ответов API.
// Message по умолчанию определяется по statusCode, если не задан явно.
type Response struct {
	StatusCode int                 `json:"statusCode"`
	ErrorCode  int                 `json:"errorCode,omitempty"`
	Message    string              `json:"message,omitempty"`
	Data       any                 `json:"data"`
	TotalCount *int64              `json:"totalCount,omitempty"`
	Details    map[string][]string `json:"details,omitempty"`
}

// NewResponse создаёт конверт с сообщением по умолчанию для статуса
func NewResponse(statusCode int, data any) Response {
	return Response{
		StatusCode: statusCode,
		Message:    defaultMessage(statusCode),
		Data:       data,
	}
}

// NewErrorResponse создаёт конверт ошибки с явным сообщением и кодом
func NewErrorResponse(statusCode int, message string, errorCode int) Response {
	if message == "" {
		message = defaultMessage(statusCode)
	}
	return Response{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func defaultMessage(statusCode int) string {
	switch statusCode {
	case 200:
		return "Success"
	case 201:
		return "Created"
	case 204:
		return "No Content"
	case 400:
		return "Bad Request"
	case 401:
		return "Unauthorized"
	case 404:
		return "Not Found"
	case 500:
		return "Internal Server Error"
	default:
		return ""
	}
}
