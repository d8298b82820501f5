package notification

import (
	"context"
	"fmt"

	"go-talento/internal/events"
	"go-talento/internal/workflow"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	RecordDecision(ctx context.Context, event events.RequestDecidedEvent) error
	GetForEmployee(ctx context.Context, employeeID string, onlyUnread bool) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, employeeID, id string) error
	MarkAllRead(ctx context.Context, employeeID string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

var kindLabels = map[string]string{
	string(workflow.KindPermission): "permiso",
	string(workflow.KindShiftSwap):  "cambio de turno",
	string(workflow.KindSeverance):  "retiro de cesantías",
}

var statusLabels = map[string]string{
	workflow.StatusInReview: "pasó a revisión del jefe de área",
	workflow.StatusApproved: "fue aprobada",
	workflow.StatusRejected: "fue rechazada",
}

// RecordDecision materializa el evento de decisión como notificación
// para el solicitante.
func (s *service) RecordDecision(ctx context.Context, event events.RequestDecidedEvent) error {
	employeeID, err := uuid.Parse(event.EmployeeID)
	if err != nil {
		return fmt.Errorf("invalid employee id in event: %w", err)
	}
	requestID, err := uuid.Parse(event.RequestID)
	if err != nil {
		return fmt.Errorf("invalid request id in event: %w", err)
	}

	kind := kindLabels[event.RequestKind]
	if kind == "" {
		kind = "solicitud"
	}
	verb := statusLabels[event.Status]
	if verb == "" {
		verb = "cambió de estado"
	}

	message := fmt.Sprintf("Su solicitud de %s %s %s.", kind, event.RequestNumber, verb)
	if event.Reason != "" {
		message = fmt.Sprintf("%s Motivo: %s", message, event.Reason)
	}

	n := &Notification{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		RequestKind:   event.RequestKind,
		RequestID:     requestID,
		RequestNumber: event.RequestNumber,
		Status:        event.Status,
		Message:       message,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("create notification failed",
			zap.String("request_id", event.RequestID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("notification recorded",
		zap.String("employee_id", event.EmployeeID),
		zap.String("request_id", event.RequestID),
		zap.String("status", event.Status),
	)
	return nil
}

func (s *service) GetForEmployee(ctx context.Context, employeeID string, onlyUnread bool) ([]NotificationResponse, error) {
	notifications, err := s.repo.FindByEmployee(ctx, employeeID, onlyUnread)
	if err != nil {
		return nil, err
	}

	resp := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		resp[i] = toResponse(n)
	}
	return resp, nil
}

func (s *service) MarkRead(ctx context.Context, employeeID, id string) error {
	return s.repo.MarkRead(ctx, employeeID, id)
}

func (s *service) MarkAllRead(ctx context.Context, employeeID string) error {
	return s.repo.MarkAllRead(ctx, employeeID)
}

func toResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID.String(),
		RequestKind:   n.RequestKind,
		RequestID:     n.RequestID.String(),
		RequestNumber: n.RequestNumber,
		Status:        n.Status,
		Message:       n.Message,
		Read:          n.Read,
		CreatedAt:     n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
