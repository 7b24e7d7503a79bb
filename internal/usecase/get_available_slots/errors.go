package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при пустой или некорректной дате
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrNotBusinessDay возвращается для субботы и воскресенья
	ErrNotBusinessDay = errors.New("get_available_slots: not a business day")

	// ErrDateInPast возвращается, когда дата раньше сегодняшней
	ErrDateInPast = errors.New("get_available_slots: date is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
