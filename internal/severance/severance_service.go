package severance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-talento/internal/authz"
	"go-talento/internal/events"
	"go-talento/internal/messaging/kafka"
	"go-talento/internal/report"
	severanceerrors "go-talento/internal/severance/errors"
	"go-talento/internal/shared/contextutil"
	"go-talento/internal/shared/counter"
	"go-talento/internal/workflow"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, sub authz.Subject, req CreateSeveranceRequest) (SeveranceResponse, error)
	List(ctx context.Context, sub authz.Subject) ([]SeveranceResponse, error)
	GetByID(ctx context.Context, sub authz.Subject, id string) (SeveranceResponse, error)
	Approve(ctx context.Context, sub authz.Subject, id string, req ApproveSeveranceRequest) (SeveranceResponse, error)
	Reject(ctx context.Context, sub authz.Subject, id string, req RejectSeveranceRequest) (SeveranceResponse, error)
	Stats(ctx context.Context, sub authz.Subject) (SeveranceStatsResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("severance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("severance.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, sub authz.Subject, req CreateSeveranceRequest) (SeveranceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create severance requested",
		zap.String("request_id", rid),
		zap.String("employee_id", sub.EmployeeID),
		zap.String("withdrawal_method", req.WithdrawalMethod),
	)

	employeeUUID, err := uuid.Parse(sub.EmployeeID)
	if err != nil {
		return SeveranceResponse{}, severanceerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create severance begin tx failed", zap.Error(err))
		return SeveranceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	nextVal, err := s.counter.GetNextValue(ctx, counter.TypeSeverance)
	if err != nil {
		s.logger.Error("create severance generate radicado failed", zap.Error(err))
		return SeveranceResponse{}, err
	}

	sv := &SeveranceRequest{
		ID:               uuid.New(),
		RequestNumber:    fmt.Sprintf("CES-%06d", nextVal),
		EmployeeID:       employeeUUID,
		Department:       sub.Department,
		WithdrawalMethod: req.WithdrawalMethod,
		RequestedAmount:  req.RequestedAmount,
		Reason:           req.Reason,
		Status:           workflow.StatusPending,
	}

	if err := qtx.Create(ctx, sv); err != nil {
		s.logger.Error("create severance persist failed", zap.Error(err))
		return SeveranceResponse{}, err
	}

	if err := s.queueCreatedEvent(ctx, tx, rid, sv); err != nil {
		return SeveranceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create severance commit failed", zap.Error(err))
		return SeveranceResponse{}, err
	}

	s.logger.Info("create severance success",
		zap.String("request_id", rid),
		zap.String("severance_id", sv.ID.String()),
		zap.String("radicado", sv.RequestNumber),
	)

	return mapToResponse(*sv), nil
}

func (s *service) List(ctx context.Context, sub authz.Subject) ([]SeveranceResponse, error) {
	res := authz.Resolve(sub)

	var (
		reqs []SeveranceRequest
		err  error
	)
	switch {
	case !res.CanSupervise:
		reqs, err = s.repo.FindByEmployee(ctx, sub.EmployeeID)
	case res.ManagedDepartment == authz.DepartmentAll:
		reqs, err = s.repo.FindAll(ctx)
	default:
		reqs, err = s.repo.FindByDepartment(ctx, res.ManagedDepartment)
	}
	if err != nil {
		s.logger.Error("list severances failed", zap.Error(err))
		return nil, err
	}

	resp := make([]SeveranceResponse, len(reqs))
	for i, sv := range reqs {
		resp[i] = mapToResponse(sv)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, sub authz.Subject, id string) (SeveranceResponse, error) {
	sv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SeveranceResponse{}, mapNotFound(err)
	}

	if sv.EmployeeID.String() != sub.EmployeeID &&
		!authz.CanViewDepartment(authz.Resolve(sub), sv.Department) {
		return SeveranceResponse{}, severanceerrors.ErrNotVisible
	}

	return mapToResponse(*sv), nil
}

// Approve requiere el monto aprobado; este puede ser menor al solicitado
// pero nunca mayor, y se guarda junto al solicitado.
func (s *service) Approve(ctx context.Context, sub authz.Subject, id string, req ApproveSeveranceRequest) (SeveranceResponse, error) {
	return s.decide(ctx, sub, id, workflow.ActionApprove, &req.ApprovedAmount, "")
}

func (s *service) Reject(ctx context.Context, sub authz.Subject, id string, req RejectSeveranceRequest) (SeveranceResponse, error) {
	return s.decide(ctx, sub, id, workflow.ActionReject, nil, req.Reason)
}

func (s *service) decide(ctx context.Context, sub authz.Subject, id string, action workflow.Action, amount *int64, reason string) (SeveranceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	actorUUID, err := uuid.Parse(sub.EmployeeID)
	if err != nil {
		return SeveranceResponse{}, severanceerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide severance begin tx failed", zap.Error(err))
		return SeveranceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sv, err := qtx.FindByID(ctx, id)
	if err != nil {
		return SeveranceResponse{}, mapNotFound(err)
	}

	res := authz.Resolve(sub)
	if !authz.CanDecideFor(res, sv.Department) {
		s.logger.Warn("decide severance forbidden",
			zap.String("severance_id", id),
			zap.String("actor_id", sub.EmployeeID),
			zap.String("department", sv.Department),
		)
		return SeveranceResponse{}, severanceerrors.ErrNotAuthorizedReviewer
	}

	tr, err := workflow.Next(workflow.KindSeverance, sv.Status, action)
	if err != nil {
		s.logger.Warn("decide severance illegal transition",
			zap.String("severance_id", id),
			zap.String("from_status", sv.Status),
			zap.String("action", string(action)),
		)
		return SeveranceResponse{}, err
	}
	if tr.NeedsReason && reason == "" {
		return SeveranceResponse{}, severanceerrors.ErrRejectionReasonRequired
	}
	if tr.NeedsAmount {
		if amount == nil || *amount <= 0 {
			return SeveranceResponse{}, severanceerrors.ErrApprovedAmountRequired
		}
		if *amount > sv.RequestedAmount {
			return SeveranceResponse{}, severanceerrors.ErrApprovedAmountExceedsRequested
		}
	}

	now := time.Now().UTC()
	sv.Status = tr.To
	switch tr.To {
	case workflow.StatusApproved:
		sv.ApprovedAmount = amount
		sv.ApprovedBy = &actorUUID
		sv.ApprovedAt = &now
		sv.RejectionReason = nil
	case workflow.StatusRejected:
		sv.RejectionReason = &reason
		sv.ApprovedBy = nil
		sv.ApprovedAt = nil
	}

	if err := qtx.Update(ctx, sv); err != nil {
		s.logger.Error("decide severance persist failed", zap.Error(err))
		return SeveranceResponse{}, err
	}

	if err := s.queueDecidedEvent(ctx, tx, rid, sv, sub.EmployeeID, reason); err != nil {
		return SeveranceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide severance commit failed", zap.Error(err))
		return SeveranceResponse{}, err
	}

	s.logger.Info("decide severance success",
		zap.String("severance_id", id),
		zap.String("status", sv.Status),
		zap.String("decided_by", sub.EmployeeID),
	)

	return mapToResponse(*sv), nil
}

func (s *service) Stats(ctx context.Context, sub authz.Subject) (SeveranceStatsResponse, error) {
	res := authz.Resolve(sub)

	var (
		reqs []SeveranceRequest
		err  error
	)
	switch {
	case !res.CanSupervise:
		reqs, err = s.repo.FindByEmployee(ctx, sub.EmployeeID)
	case res.ManagedDepartment == authz.DepartmentAll:
		reqs, err = s.repo.FindAll(ctx)
	default:
		reqs, err = s.repo.FindByDepartment(ctx, res.ManagedDepartment)
	}
	if err != nil {
		return SeveranceStatsResponse{}, err
	}

	records := make([]report.Record, len(reqs))
	for i, sv := range reqs {
		requester := sv.EmployeeID.String()
		if sv.Employee != nil {
			requester = sv.Employee.FullName
		}
		amount := sv.RequestedAmount
		if sv.ApprovedAmount != nil {
			amount = *sv.ApprovedAmount
		}
		records[i] = report.Record{
			Status:    sv.Status,
			CreatedAt: sv.CreatedAt,
			Requester: requester,
			Dimension: sv.WithdrawalMethod,
			Amount:    amount,
		}
	}

	return SeveranceStatsResponse{Summary: report.Summarize(records, time.Now())}, nil
}

func (s *service) queueCreatedEvent(ctx context.Context, tx *sql.Tx, rid string, sv *SeveranceRequest) error {
	if s.outbox == nil {
		return nil
	}

	event := events.RequestCreatedEvent{
		EventType:     "request_created",
		RequestKind:   string(workflow.KindSeverance),
		RequestID:     sv.ID.String(),
		RequestNumber: sv.RequestNumber,
		EmployeeID:    sv.EmployeeID.String(),
		Department:    sv.Department,
		OccurredAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "severance_request",
		AggregateID:   sv.ID.String(),
		EventType:     event.EventType,
		Topic:         events.RequestCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) queueDecidedEvent(ctx context.Context, tx *sql.Tx, rid string, sv *SeveranceRequest, decidedBy, reason string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.RequestDecidedEvent{
		EventType:     "request_decided",
		RequestKind:   string(workflow.KindSeverance),
		RequestID:     sv.ID.String(),
		RequestNumber: sv.RequestNumber,
		EmployeeID:    sv.EmployeeID.String(),
		Status:        sv.Status,
		DecidedBy:     decidedBy,
		Reason:        reason,
		OccurredAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "severance_request",
		AggregateID:   sv.ID.String(),
		EventType:     event.EventType,
		Topic:         events.RequestDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return severanceerrors.ErrSeveranceNotFound
	}
	return err
}

func mapToResponse(sv SeveranceRequest) SeveranceResponse {
	resp := SeveranceResponse{
		ID:               sv.ID.String(),
		RequestNumber:    sv.RequestNumber,
		EmployeeID:       sv.EmployeeID.String(),
		Department:       sv.Department,
		WithdrawalMethod: sv.WithdrawalMethod,
		RequestedAmount:  sv.RequestedAmount,
		ApprovedAmount:   sv.ApprovedAmount,
		Reason:           sv.Reason,
		Status:           sv.Status,
		RejectionReason:  sv.RejectionReason,
		CreatedAt:        sv.CreatedAt.Format(time.RFC3339),
	}
	if sv.Employee != nil {
		resp.EmployeeName = sv.Employee.FullName
	}
	if sv.ApprovedBy != nil {
		v := sv.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if sv.ApprovedAt != nil {
		v := sv.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	for _, a := range workflow.Actions(workflow.KindSeverance, sv.Status) {
		resp.AllowedActions = append(resp.AllowedActions, string(a))
	}
	return resp
}
