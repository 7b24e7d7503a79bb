package whatsapp

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")

	// ErrDeliveryFailed возвращается, когда шлюз отклонил сообщение
	ErrDeliveryFailed = errors.New("whatsapp client: delivery failed")
)
