package client

import (
	"context"
	"fmt"
	"net/http"
)

// ResourceAPI - списочные и единичные операции одного ресурса.
// Все три сущности имеют одинаковую форму эндпоинтов.
type ResourceAPI[T any] struct {
	c        *Client
	basePath string
}

func newResourceAPI[T any](c *Client, basePath string) *ResourceAPI[T] {
	return &ResourceAPI[T]{c: c, basePath: basePath}
}

// List возвращает страницу записей и общее количество
func (r *ResourceAPI[T]) List(ctx context.Context, q Query) ([]T, int64, error) {
	env, err := do[[]T](ctx, r.c, http.MethodGet, r.basePath, q.values(), nil)
	if err != nil {
		return nil, 0, err
	}

	total := int64(len(env.Data))
	if env.TotalCount != nil {
		total = *env.TotalCount
	}
	return env.Data, total, nil
}

// Get возвращает запись по id
func (r *ResourceAPI[T]) Get(ctx context.Context, id int64) (T, error) {
	env, err := do[T](ctx, r.c, http.MethodGet, fmt.Sprintf("%s/%d", r.basePath, id), nil, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

// Create создаёт запись и возвращает её с присвоенным id
func (r *ResourceAPI[T]) Create(ctx context.Context, item T) (T, error) {
	env, err := do[T](ctx, r.c, http.MethodPost, r.basePath, nil, item)
	if err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

// Update выполняет полную замену записи
func (r *ResourceAPI[T]) Update(ctx context.Context, id int64, item T) (T, error) {
	env, err := do[T](ctx, r.c, http.MethodPut, fmt.Sprintf("%s/%d", r.basePath, id), nil, item)
	if err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

// Delete удаляет запись по id
func (r *ResourceAPI[T]) Delete(ctx context.Context, id int64) error {
	_, err := do[struct{}](ctx, r.c, http.MethodDelete, fmt.Sprintf("%s/%d", r.basePath, id), nil, nil)
	return err
}
