package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Unavailable показывается вместо значения, которого нет в ответе внешнего API.
const Unavailable = "unavailable"

// Optional хранит значение, которое upstream может не прислать.
// Нулевое значение означает "недоступно". В JSON недоступное значение кодируется как null.
type Optional[T any] struct {
	value T
	valid bool
}

// Known оборачивает присутствующее значение.
func Known[T any](v T) Optional[T] {
	return Optional[T]{value: v, valid: true}
}

// Missing возвращает недоступное значение.
func Missing[T any]() Optional[T] {
	return Optional[T]{}
}

// Get возвращает значение и признак его наличия. Для недоступного значения это нулевое T.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.valid
}

// Value возвращает значение или нулевое T.
func (o Optional[T]) Value() T {
	return o.value
}

// Valid сообщает, пришло ли значение.
func (o Optional[T]) Valid() bool {
	return o.valid
}

// String отдаёт значение для отображения или Unavailable.
func (o Optional[T]) String() string {
	if !o.valid {
		return Unavailable
	}
	return fmt.Sprint(o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Known(v)
	return nil
}
