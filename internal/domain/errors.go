package domain

import "errors"

var (
	// ErrUpstream возвращается при сетевой или HTTP-ошибке внешнего API.
	ErrUpstream = errors.New("upstream error")
	// ErrNotFound возвращается, когда внешний API не знает такой монеты (или цены для пары).
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument возвращается, когда параметр запроса вне допустимого набора.
	ErrInvalidArgument = errors.New("invalid argument")
)
