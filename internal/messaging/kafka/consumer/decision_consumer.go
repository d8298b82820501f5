package consumer

import (
	"context"
	"encoding/json"

	"go-talento/internal/events"
	"go-talento/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeRequestDecisions lee los eventos de decisión y los materializa
// como notificaciones para el solicitante.
func ConsumeRequestDecisions(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.request_decision")
	log.Info("request decision consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("request decision consumer stopped")
				return
			}
			log.Error("fetch request decision message failed", zap.Error(err))
			continue
		}

		var event events.RequestDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			// Mensaje malformado: se confirma para no bloquear la partición.
			log.Error("decode request_decided event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := notificationService.RecordDecision(ctx, event); err != nil {
			log.Error("record decision notification failed",
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit request decision message failed", zap.Error(err))
			continue
		}

		log.Info("request decision notified",
			zap.String("request_id", event.RequestID),
			zap.String("employee_id", event.EmployeeID),
			zap.String("status", event.Status),
		)
	}
}
