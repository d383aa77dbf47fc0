package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/segmentio/kafka-go"

	"nft_escrow/internal/domain/entity"
	"nft_escrow/pkg/contextx"
	"nft_escrow/pkg/logx"
)

var (
	logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
)

const (
	queueSize    = 256
	writeTimeout = 10 * time.Second
)

//go:generate moq -rm -out message_writer_mock.gen.go . messageWriter:MessageWriterMock
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// OfferEvents публикует события жизненного цикла в kafka. Publish не
// блокирует запрос: событие кладётся в буфер, Run отправляет.
type OfferEvents struct {
	writer messageWriter
	events chan entity.OfferEvent
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           writeTimeout,
	}
}

func NewOfferEvents(writer messageWriter) *OfferEvents {
	return &OfferEvents{
		writer: writer,
		events: make(chan entity.OfferEvent, queueSize),
	}
}

type offerEventMessage struct {
	Type          string    `json:"type"`
	OfferID       string    `json:"offerId"`
	NFTAddress    string    `json:"nftAddress"`
	SellerAddress string    `json:"sellerAddress"`
	BuyerAddress  string    `json:"buyerAddress"`
	EscrowAddress string    `json:"escrowAddress"`
	OfferedAmount string    `json:"offeredAmount"`
	Fee           string    `json:"fee"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// Publish при переполненном буфере событие теряется с записью в лог.
func (n *OfferEvents) Publish(ctx context.Context, event entity.OfferEvent) {
	select {
	case n.events <- event:
	default:
		logger(ctx).Warn("offer event dropped, buffer is full",
			slog.String(logx.FieldOfferID, event.Offer.ID),
			slog.String("event-type", string(event.Type)),
		)
	}
}

// Run отправляет события из буфера до отмены контекста.
func (n *OfferEvents) Run(ctx context.Context) error {
	logger(ctx).Info("offer events publisher started")

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("offer events publisher stopped")
			return nil
		case event := <-n.events:
			if err := n.send(ctx, event); err != nil {
				logger(ctx).Error("failed to publish offer event",
					slog.String(logx.FieldOfferID, event.Offer.ID),
					logx.Error(err),
				)
			}
		}
	}
}

func (n *OfferEvents) send(ctx context.Context, event entity.OfferEvent) error {
	o := event.Offer

	payload, err := json.Marshal(offerEventMessage{
		Type:          string(event.Type),
		OfferID:       o.ID,
		NFTAddress:    o.NFTAddress.String(),
		SellerAddress: o.SellerAddress.String(),
		BuyerAddress:  o.BuyerAddress.String(),
		EscrowAddress: o.EscrowAddress.String(),
		OfferedAmount: o.OfferedAmount.String(),
		Fee:           o.Fee.String(),
		Status:        o.Status.String(),
		OccurredAt:    event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	// ключ по активу: события одного актива идут в одну партицию по порядку
	msg := kafka.Message{
		Key:   []byte(o.NFTAddress.String()),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("writer.WriteMessages: %w", err)
	}

	return nil
}
