package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/kamile-nails/booking-service/internal/events"
)

const sendTimeout = 10 * time.Second

// Worker читает события из очереди и отправляет уведомления владельцу салона.
// Ошибки доставки логируются и проглатываются.
type Worker struct {
	events     <-chan events.Event
	notifier   Notifier
	salonPhone string
	log        Logger
	done       chan struct{}
}

// NewWorker создает воркер поверх очереди publisher'а
func NewWorker(pub *Publisher, n Notifier, salonPhone string, log Logger) *Worker {
	return &Worker{
		events:     pub.Events(),
		notifier:   n,
		salonPhone: salonPhone,
		log:        log,
		done:       make(chan struct{}),
	}
}

// Run обрабатывает события до закрытия очереди
func (w *Worker) Run() {
	defer close(w.done)

	for ev := range w.events {
		message, ok := renderMessage(ev)
		if !ok {
			w.log.Warn("notifier: skipping unknown event kind=%s", ev.Kind())
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err := w.notifier.Send(ctx, w.salonPhone, message)
		cancel()

		if err != nil {
			w.log.Error("notifier: failed to deliver %s notification: %v", ev.Kind(), err)
			continue
		}
		w.log.Info("notifier: delivered %s notification", ev.Kind())
	}
}

// Done закрывается после обработки всех событий
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// renderMessage формирует текст уведомления
func renderMessage(ev events.Event) (string, bool) {
	switch e := ev.(type) {
	case events.BookingCreated:
		return fmt.Sprintf("Novo agendamento confirmado!\n\nData: %s\nHorário: %s\nCliente: %s\nTelefone: %s",
			e.Date, e.Time, e.ClientName, e.ClientPhone), true
	case events.BookingCancelled:
		return fmt.Sprintf("Agendamento cancelado!\n\nData: %s\nHorário: %s\nCliente: %s",
			e.Date, e.Time, e.ClientName), true
	default:
		return "", false
	}
}
