// Package notifier доставляет события бронирований в WhatsApp владельцу салона.
// Публикация неблокирующая: исход доставки никогда не влияет на исходный запрос.
package notifier

import (
	"context"

	"github.com/kamile-nails/booking-service/internal/events"
)

// Notifier интерфейс отправителя уведомлений
type Notifier interface {
	Send(ctx context.Context, phone, message string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher буферизованная очередь исходящих событий
type Publisher struct {
	ch  chan events.Event
	log Logger
}

// NewPublisher создает publisher с буфером указанного размера
func NewPublisher(bufferSize int, log Logger) *Publisher {
	return &Publisher{
		ch:  make(chan events.Event, bufferSize),
		log: log,
	}
}

// Publish кладет событие в очередь, никогда не блокируя вызывающего.
// При переполненном буфере событие отбрасывается с записью в лог:
// уведомления best-effort и не влияют на результат операции.
func (p *Publisher) Publish(ev events.Event) {
	select {
	case p.ch <- ev:
	default:
		p.log.Warn("notifier: event buffer full, dropping %s", ev.Kind())
	}
}

// Close закрывает очередь; worker завершится, обработав остаток событий
func (p *Publisher) Close() {
	close(p.ch)
}

// Events возвращает канал для чтения воркером
func (p *Publisher) Events() <-chan events.Event {
	return p.ch
}
