package client

import (
	"context"
	"sync"
)

// crudAPI - операции, которые нужны хранилищу от ресурсного API
type crudAPI[T any] interface {
	List(ctx context.Context, q Query) ([]T, int64, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id int64, item T) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Snapshot - снимок состояния хранилища, доступный потребителям
// только на чтение
type Snapshot[T any] struct {
	Items      []T
	Loading    bool
	Err        *AppError
	Selected   *T
	TotalCount int64
}

// Store - единственный источник истины по одной сущности на клиенте:
// список, выбранный элемент, флаг загрузки и структурированная ошибка.
// Все сетевые вызовы проходят через него. Ответы загрузок помечаются
// монотонным номером, устаревший ответ отбрасывается и не может
// затереть более свежие данные.
type Store[T any] struct {
	mu       sync.Mutex
	api      crudAPI[T]
	notifier Notifier
	entity   string
	idOf     func(T) int64

	items    []T
	loading  bool
	err      *AppError
	selected *T
	total    int64
	loadSeq  uint64
}

// NewStore создаёт хранилище состояния для одной сущности.
// entity используется в текстах уведомлений, idOf извлекает id записи.
func NewStore[T any](api crudAPI[T], notifier Notifier, entity string, idOf func(T) int64) *Store[T] {
	return &Store[T]{
		api:      api,
		notifier: notifier,
		entity:   entity,
		idOf:     idOf,
	}
}

// State возвращает снимок текущего состояния
func (s *Store[T]) State() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]T, len(s.items))
	copy(items, s.items)

	snap := Snapshot[T]{
		Items:      items,
		Loading:    s.loading,
		Err:        s.err,
		TotalCount: s.total,
	}
	if s.selected != nil {
		sel := *s.selected
		snap.Selected = &sel
	}
	return snap
}

// Load запрашивает страницу записей. Флаг загрузки снимается на обоих
// исходах; список заменяется только при успехе.
func (s *Store[T]) Load(ctx context.Context, q Query) error {
	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	items, total, err := s.api.List(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Ответ более старого запроса, чем уже выданный - отбрасываем
	if seq != s.loadSeq {
		return err
	}

	s.loading = false
	if err != nil {
		s.err = asAppError(err, "Failed to load "+s.entity+" list")
		return err
	}

	s.items = items
	s.total = total
	s.err = nil
	return nil
}

// Create создаёт запись; при успехе добавляет её в локальный список
func (s *Store[T]) Create(ctx context.Context, item T) error {
	created, err := s.api.Create(ctx, item)
	if err != nil {
		s.fail(err, "Failed to create "+s.entity)
		return err
	}

	s.mu.Lock()
	s.items = append(s.items, created)
	s.total++
	s.err = nil
	s.mu.Unlock()

	s.notifier.Success("Success", s.entity+" created successfully")
	return nil
}

// Update обновляет запись; при успехе заменяет её в локальном списке
func (s *Store[T]) Update(ctx context.Context, id int64, item T) error {
	updated, err := s.api.Update(ctx, id, item)
	if err != nil {
		s.fail(err, "Failed to update "+s.entity)
		return err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.idOf(s.items[i]) == id {
			s.items[i] = updated
			break
		}
	}
	if s.selected != nil && s.idOf(*s.selected) == id {
		sel := updated
		s.selected = &sel
	}
	s.err = nil
	s.mu.Unlock()

	s.notifier.Success("Success", s.entity+" updated successfully")
	return nil
}

// Delete удаляет запись; при успехе убирает её из локального списка
func (s *Store[T]) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, id); err != nil {
		s.fail(err, "Failed to delete "+s.entity)
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if s.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.total = int64(len(kept))
	if s.selected != nil && s.idOf(*s.selected) == id {
		s.selected = nil
	}
	s.err = nil
	s.mu.Unlock()

	s.notifier.Success("Success", s.entity+" deleted successfully")
	return nil
}

// Select запоминает выбранный элемент (для форм редактирования)
func (s *Store[T]) Select(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &item
}

// Deselect очищает выбор
func (s *Store[T]) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// ClearError очищает сохранённую ошибку
func (s *Store[T]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
}

// Reset сбрасывает всё состояние (например, при выходе пользователя)
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.loading = false
	s.err = nil
	s.selected = nil
	s.total = 0
}

// fail записывает ошибку и показывает уведомление;
// локальный список при неудаче не меняется
func (s *Store[T]) fail(err error, defaultMessage string) {
	appErr := asAppError(err, defaultMessage)

	s.mu.Lock()
	s.err = appErr
	s.mu.Unlock()

	s.notifier.Error("Error", appErr.Message)
}
