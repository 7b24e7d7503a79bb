package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamile-nails/booking-service/internal/events"
)

type fakeLogger struct{}

func (fakeLogger) Info(format string, v ...interface{})  {}
func (fakeLogger) Warn(format string, v ...interface{})  {}
func (fakeLogger) Error(format string, v ...interface{}) {}

type fakeNotifier struct {
	mu      sync.Mutex
	sent    []string
	phones  []string
	sendErr error
}

func (f *fakeNotifier) Send(ctx context.Context, phone, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.phones = append(f.phones, phone)
	f.sent = append(f.sent, message)
	return nil
}

func (f *fakeNotifier) messages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

var createdEvent = events.BookingCreated{
	BookingID:   "booking-1",
	Date:        "2025-08-19",
	Time:        "10:00",
	ClientName:  "Ana Silva",
	ClientPhone: "(11) 98765-4321",
}

func TestWorker_DeliversCreatedEvent(t *testing.T) {
	n := &fakeNotifier{}
	pub := NewPublisher(4, fakeLogger{})
	worker := NewWorker(pub, n, "5511963065438", fakeLogger{})
	go worker.Run()

	pub.Publish(createdEvent)
	pub.Close()
	waitDone(t, worker)

	messages := n.messages()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Novo agendamento confirmado!")
	assert.Contains(t, messages[0], "Data: 2025-08-19")
	assert.Contains(t, messages[0], "Horário: 10:00")
	assert.Contains(t, messages[0], "Cliente: Ana Silva")
	assert.Contains(t, messages[0], "Telefone: (11) 98765-4321")
	assert.Equal(t, []string{"5511963065438"}, n.phones)
}

func TestWorker_DeliversCancelledEvent(t *testing.T) {
	n := &fakeNotifier{}
	pub := NewPublisher(4, fakeLogger{})
	worker := NewWorker(pub, n, "5511963065438", fakeLogger{})
	go worker.Run()

	pub.Publish(events.BookingCancelled{
		BookingID:  "booking-1",
		Date:       "2025-08-19",
		Time:       "10:00",
		ClientName: "Ana Silva",
	})
	pub.Close()
	waitDone(t, worker)

	messages := n.messages()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Agendamento cancelado!")
	assert.NotContains(t, messages[0], "Telefone")
}

func TestWorker_SwallowsDeliveryFailure(t *testing.T) {
	n := &fakeNotifier{sendErr: errors.New("gateway unavailable")}
	pub := NewPublisher(4, fakeLogger{})
	worker := NewWorker(pub, n, "5511963065438", fakeLogger{})
	go worker.Run()

	// Ошибка доставки не должна ронять воркер
	pub.Publish(createdEvent)
	pub.Publish(createdEvent)
	pub.Close()
	waitDone(t, worker)

	assert.Empty(t, n.messages())
}

func TestPublisher_DropsWhenBufferFull(t *testing.T) {
	pub := NewPublisher(1, fakeLogger{})

	// Воркер не запущен: второй Publish должен отбросить событие, не блокируя
	done := make(chan struct{})
	go func() {
		pub.Publish(createdEvent)
		pub.Publish(createdEvent)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on full buffer")
	}
}

func TestRenderMessage_UnknownEvent(t *testing.T) {
	_, ok := renderMessage(unknownEvent{})
	assert.False(t, ok)
}

type unknownEvent struct{}

func (unknownEvent) Kind() string { return "booking.unknown" }

func waitDone(t *testing.T, w *Worker) {
	t.Helper()
	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not finish in time")
	}
}
