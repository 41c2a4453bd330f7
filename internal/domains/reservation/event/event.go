package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slotbook/config"
	"slotbook/infras/kafka"
	"slotbook/infras/otel"
	"slotbook/internal/domains/reservation/model"
	"slotbook/shared/constant"

	"github.com/rs/zerolog/log"
)

// Recorded is the payload published for every recorded reservation.
type Recorded struct {
	ID         string  `json:"id"`
	Resource   string  `json:"resource"`
	Date       string  `json:"date"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Status     string  `json:"status"`
	Price      float64 `json:"price"`
	Reason     string  `json:"reason,omitempty"`
	RecordedAt string  `json:"recorded_at"`
}

func (r *Recorded) FromModel(reservation model.Reservation) {
	r.ID = reservation.ID
	r.Resource = reservation.Resource
	r.Date = reservation.Date.String()
	r.Start = reservation.Range.Start.String()
	r.End = reservation.Range.End.String()
	r.Status = string(reservation.Status)
	r.Price = reservation.Price
	r.Reason = string(reservation.Reason)
	r.RecordedAt = reservation.RecordedAt.Format(constant.DateFormat)
}

// PartitionKey keeps the events of one resource and day in order.
func PartitionKey(reservation model.Reservation) string {
	return reservation.Resource + ":" + reservation.Date.String()
}

type Publisher interface {
	Publish(ctx context.Context, reservation model.Reservation) error
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

type noopPublisher struct{}

func (noopPublisher) Publish(_ context.Context, _ model.Reservation) error { return nil }

// New returns a Kafka-backed publisher, or a no-op one when KAFKA_ENABLE is false.
func New(cfg *config.Config, client kafka.Client, ot otel.Otel) Publisher {
	if !cfg.Kafka.Enable {
		log.Warn().Msg("Kafka disabled, reservation events will not be published")

		return noopPublisher{}
	}

	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topics.Reservation,
		otel:   ot,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, reservation model.Reservation) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"messaging.destination": p.topic,
		"reservation.id":        reservation.ID,
	})

	payload := Recorded{}
	payload.FromModel(reservation)

	err = p.client.SendMessages(ctx, p.topic, kafka.Message{Key: PartitionKey(reservation), Value: payload})
	if err != nil {
		return fmt.Errorf("failed to publish reservation event: %w", err)
	}

	return nil
}
