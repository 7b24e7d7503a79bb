package create_booking

import "errors"

var (
	// ErrNotBusinessDay возвращается для субботы и воскресенья
	ErrNotBusinessDay = errors.New("create_booking: not a business day")

	// ErrDateInPast возвращается, когда дата бронирования раньше сегодняшней
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrSlotTaken возвращается, когда слот уже занят confirmed бронированием
	ErrSlotTaken = errors.New("create_booking: slot is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
