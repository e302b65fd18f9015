package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"

	"cryptoTracker/internal/ports"
)

var (
	_ ports.IProducer = (*Producer)(nil)
	_ ports.IProducer = NopProducer{}
)

// Producer это обёртка над kafka.Writer для отправки сообщений в топик.
type Producer struct {
	w *kafka.Writer
}

// NewProducer создаёт продюсера по конфигу. После использования вызови Close().
func NewProducer(cfg *Config) *Producer {
	return New(cfg).Producer()
}

// Send отправляет одно сообщение (key и value это произвольные байты).
func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}

// Close закрывает продюсера.
func (p *Producer) Close() error {
	return p.w.Close()
}

// NopProducer подставляется, когда Kafka выключена: сообщения отбрасываются.
type NopProducer struct{}

func (NopProducer) Send(context.Context, []byte, []byte) error { return nil }
