package pocketbase

import (
	"context"
	"errors"
)

// ErrNotFound возвращается, когда запись отсутствует в коллекции
var ErrNotFound = errors.New("record not found")

// IsCancellation сообщает, была ли ошибка вызвана отменой запроса
// (уход клиента, таймаут контекста). Такие ошибки передаются наверх
// как есть и никогда не превращаются в пустой результат.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
