package dto

import (
	"net/url"
	"strconv"
	"strings"
)

// MaxPageSize - серверный предел размера страницы, запросы больше урезаются
const MaxPageSize = 50

// DefaultPageSize - размер страницы по умолчанию
const DefaultPageSize = 10

// ListQuery - параметры списочного запроса: фильтр, сортировка, страница
type ListQuery struct {
	Filter     string
	SortBy     string
	SortOrder  string
	PageNumber int
	PageSize   int
}

// ParseListQuery разбирает query string без учёта регистра имён параметров.
// Размер страницы ограничивается MaxPageSize независимо от запрошенного.
func ParseListQuery(values url.Values) ListQuery {
	q := ListQuery{
		SortOrder:  "asc",
		PageNumber: 1,
		PageSize:   DefaultPageSize,
	}

	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}
		v := vals[0]
		switch strings.ToLower(key) {
		case "filter":
			q.Filter = v
		case "sortby":
			q.SortBy = v
		case "sortorder":
			if strings.EqualFold(v, "desc") {
				q.SortOrder = "desc"
			}
		case "pagenumber":
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				q.PageNumber = n
			}
		case "pagesize":
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				q.PageSize = n
			}
		}
	}

	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}

	return q
}

// Offset возвращает смещение для skip/take пагинации
func (q ListQuery) Offset() int {
	return (q.PageNumber - 1) * q.PageSize
}
