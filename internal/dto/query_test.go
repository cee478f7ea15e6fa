package dto_test

import (
	"net/url"
	"testing"

	"github.com/employee-management-api/internal/dto"
)

func TestParseListQuery_Defaults(t *testing.T) {
	q := dto.ParseListQuery(url.Values{})

	if q.PageNumber != 1 {
		t.Errorf("expected page 1, got %d", q.PageNumber)
	}
	if q.PageSize != dto.DefaultPageSize {
		t.Errorf("expected page size %d, got %d", dto.DefaultPageSize, q.PageSize)
	}
	if q.SortOrder != "asc" {
		t.Errorf("expected sortOrder 'asc', got %q", q.SortOrder)
	}
}

func TestParseListQuery_CaseInsensitiveKeys(t *testing.T) {
	values := url.Values{
		"Filter":     {"John"},
		"SORTBY":     {"name"},
		"sortorder":  {"desc"},
		"PageNumber": {"2"},
		"pagesize":   {"20"},
	}

	q := dto.ParseListQuery(values)
	if q.Filter != "John" || q.SortBy != "name" || q.SortOrder != "desc" {
		t.Errorf("unexpected parse result: %+v", q)
	}
	if q.PageNumber != 2 || q.PageSize != 20 {
		t.Errorf("unexpected paging: %+v", q)
	}
}

func TestParseListQuery_PageSizeClamped(t *testing.T) {
	q := dto.ParseListQuery(url.Values{"pageSize": {"1000"}})
	if q.PageSize != dto.MaxPageSize {
		t.Errorf("expected page size clamped to %d, got %d", dto.MaxPageSize, q.PageSize)
	}
}

func TestParseListQuery_InvalidNumbersIgnored(t *testing.T) {
	q := dto.ParseListQuery(url.Values{
		"pageNumber": {"abc"},
		"pageSize":   {"-5"},
	})

	if q.PageNumber != 1 {
		t.Errorf("expected default page for invalid value, got %d", q.PageNumber)
	}
	if q.PageSize != dto.DefaultPageSize {
		t.Errorf("expected default page size for invalid value, got %d", q.PageSize)
	}
}

func TestListQuery_Offset(t *testing.T) {
	q := dto.ListQuery{PageNumber: 3, PageSize: 10}
	if q.Offset() != 20 {
		t.Errorf("expected offset 20, got %d", q.Offset())
	}
}
