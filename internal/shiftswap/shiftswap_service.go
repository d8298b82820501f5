package shiftswap

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
	"go-talento/internal/shared/contextutil"
	"go-talento/internal/shared/counter"
	shiftswaperrors "go-talento/internal/shiftswap/errors"
	"go-talento/internal/workflow"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, sub authz.Subject, req CreateShiftSwapRequest) (ShiftSwapResponse, error)
	List(ctx context.Context, sub authz.Subject) ([]ShiftSwapResponse, error)
	GetByID(ctx context.Context, sub authz.Subject, id string) (ShiftSwapResponse, error)
	PendingSignOff(ctx context.Context, sub authz.Subject) ([]ShiftSwapResponse, error)
	SignOff(ctx context.Context, sub authz.Subject, id string, approve bool, comment string) (ShiftSwapResponse, error)
	ReviewQueue(ctx context.Context, sub authz.Subject) ([]ShiftSwapResponse, error)
	HeadDecide(ctx context.Context, sub authz.Subject, id string, approve bool, comment string) (ShiftSwapResponse, error)
	Stats(ctx context.Context, sub authz.Subject) (ShiftSwapStatsResponse, error)
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
	l := zap.L().Named("shiftswap.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shiftswap.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, sub authz.Subject, req CreateShiftSwapRequest) (ShiftSwapResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create shift swap requested",
		zap.String("request_id", rid),
		zap.String("requester_id", sub.EmployeeID),
		zap.String("replacement_id", req.ReplacementID),
	)

	requesterUUID, err := uuid.Parse(sub.EmployeeID)
	if err != nil {
		return ShiftSwapResponse{}, shiftswaperrors.ErrInvalidActorID
	}
	replacementUUID, err := uuid.Parse(req.ReplacementID)
	if err != nil {
		return ShiftSwapResponse{}, shiftswaperrors.ErrInvalidActorID
	}
	if replacementUUID == requesterUUID {
		return ShiftSwapResponse{}, shiftswaperrors.ErrReplacementIsRequester
	}
	shiftDate, err := parseDate(req.ShiftDate)
	if err != nil {
		return ShiftSwapResponse{}, err
	}
	proposedDate, err := parseDate(req.ProposedDate)
	if err != nil {
		return ShiftSwapResponse{}, err
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if shiftDate.Before(today) {
		return ShiftSwapResponse{}, shiftswaperrors.ErrShiftDateInPast
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create shift swap begin tx failed", zap.Error(err))
		return ShiftSwapResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	nextVal, err := s.counter.GetNextValue(ctx, counter.TypeShiftSwap)
	if err != nil {
		s.logger.Error("create shift swap generate radicado failed", zap.Error(err))
		return ShiftSwapResponse{}, err
	}

	sw := &ShiftSwapRequest{
		ID:            uuid.New(),
		RequestNumber: fmt.Sprintf("CT-%06d", nextVal),
		RequesterID:   requesterUUID,
		ReplacementID: replacementUUID,
		Department:    sub.Department,
		ShiftDate:     shiftDate,
		ShiftType:     req.ShiftType,
		ProposedDate:  proposedDate,
		Reason:        req.Reason,
		Status:        workflow.StatusPending,
	}

	if err := qtx.Create(ctx, sw); err != nil {
		s.logger.Error("create shift swap persist failed", zap.Error(err))
		return ShiftSwapResponse{}, err
	}

	if err := s.queueCreatedEvent(ctx, tx, rid, sw); err != nil {
		return ShiftSwapResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create shift swap commit failed", zap.Error(err))
		return ShiftSwapResponse{}, err
	}

	s.logger.Info("create shift swap success",
		zap.String("request_id", rid),
		zap.String("shiftswap_id", sw.ID.String()),
		zap.String("radicado", sw.RequestNumber),
	)

	return mapToResponse(*sw), nil
}

func (s *service) List(ctx context.Context, sub authz.Subject) ([]ShiftSwapResponse, error) {
	res := authz.Resolve(sub)

	var (
		reqs []ShiftSwapRequest
		err  error
	)
	switch {
	case !res.CanSupervise:
		reqs, err = s.repo.FindByRequester(ctx, sub.EmployeeID)
	case res.ManagedDepartment == authz.DepartmentAll:
		reqs, err = s.repo.FindAll(ctx)
	default:
		reqs, err = s.repo.FindByDepartment(ctx, res.ManagedDepartment)
	}
	if err != nil {
		s.logger.Error("list shift swaps failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(reqs), nil
}

func (s *service) GetByID(ctx context.Context, sub authz.Subject, id string) (ShiftSwapResponse, error) {
	sw, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ShiftSwapResponse{}, mapNotFound(err)
	}

	if err := s.checkVisibility(sub, sw); err != nil {
		return ShiftSwapResponse{}, err
	}

	return mapToResponse(*sw), nil
}

// PendingSignOff lista las solicitudes que esperan el visto bueno del
// actor como reemplazante nominado.
func (s *service) PendingSignOff(ctx context.Context, sub authz.Subject) ([]ShiftSwapResponse, error) {
	reqs, err := s.repo.FindPendingSignOff(ctx, sub.EmployeeID)
	if err != nil {
		s.logger.Error("list pending sign-off failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(reqs), nil
}

// SignOff registra la decisión del reemplazante. Aprobar deja la solicitud
// en revisión del jefe; rechazar la cierra con motivo obligatorio.
func (s *service) SignOff(ctx context.Context, sub authz.Subject, id string, approve bool, comment string) (ShiftSwapResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	action := workflow.ActionSignOffApprove
	if !approve {
		action = workflow.ActionSignOffReject
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("sign off begin tx failed", zap.Error(err))
		return ShiftSwapResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sw, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ShiftSwapResponse{}, mapNotFound(err)
	}

	if sw.ReplacementID.String() != sub.EmployeeID {
		s.logger.Warn("sign off by non-replacement",
			zap.String("shiftswap_id", id),
			zap.String("actor_id", sub.EmployeeID),
		)
		return ShiftSwapResponse{}, shiftswaperrors.ErrNotReplacement
	}

	tr, err := workflow.Next(workflow.KindShiftSwap, sw.Status, action)
	if err != nil {
		s.logger.Warn("sign off illegal transition",
			zap.String("shiftswap_id", id),
			zap.String("from_status", sw.Status),
			zap.String("action", string(action)),
		)
		return ShiftSwapResponse{}, err
	}
	if tr.NeedsReason && comment == "" {
		return ShiftSwapResponse{}, shiftswaperrors.ErrRejectionReasonRequired
	}

	now := time.Now().UTC()
	sw.Status = tr.To
	sw.SignOffAt = &now
	if comment != "" {
		sw.SignOffComment = &comment
	}
	if tr.To == workflow.StatusRejected {
		sw.RejectionReason = &comment
	}

	if err := qtx.Update(ctx, sw); err != nil {
		s.logger.Error("sign off persist failed", zap.Error(err))
		return ShiftSwapResponse{}, err
	}

	if err := s.queueDecidedEvent(ctx, tx, rid, sw, sub.EmployeeID, comment); err != nil {
		return ShiftSwapResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("sign off commit failed", zap.Error(err))
		return ShiftSwapResponse{}, err
	}

	s.logger.Info("sign off success",
		zap.String("shiftswap_id", id),
		zap.String("status", sw.Status),
	)

	return mapToResponse(*sw), nil
}

// ReviewQueue lista las solicitudes con visto bueno que esperan decisión
// del jefe, filtradas por el área que el actor supervisa.
func (s *service) ReviewQueue(ctx context.Context, sub authz.Subject) ([]ShiftSwapResponse, error) {
	res := authz.Resolve(sub)
	if !res.CanSupervise {
		return nil, shiftswaperrors.ErrNotDepartmentHead
	}

	var (
		reqs []ShiftSwapRequest
		err  error
	)
	if res.ManagedDepartment == authz.DepartmentAll {
		reqs, err = s.repo.FindInReview(ctx)
	} else {
		reqs, err = s.repo.FindInReviewByDepartment(ctx, res.ManagedDepartment)
	}
	if err != nil {
		s.logger.Error("list review queue failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(reqs), nil
}

func (s *service) HeadDecide(ctx context.Context, sub authz.Subject, id string, approve bool, comment string) (ShiftSwapResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	action := workflow.ActionHeadApprove
	if !approve {
		action = workflow.ActionHeadReject
	}

	actorUUID, err := uuid.Parse(sub.EmployeeID)
	if err != nil {
		return ShiftSwapResponse{}, shiftswaperrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("head decide begin tx failed", zap.Error(err))
		return ShiftSwapResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sw, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ShiftSwapResponse{}, mapNotFound(err)
	}

	res := authz.Resolve(sub)
	if !authz.CanDecideFor(res, sw.Department) {
		s.logger.Warn("head decide forbidden",
			zap.String("shiftswap_id", id),
			zap.String("actor_id", sub.EmployeeID),
			zap.String("department", sw.Department),
		)
		return ShiftSwapResponse{}, shiftswaperrors.ErrNotDepartmentHead
	}

	tr, err := workflow.Next(workflow.KindShiftSwap, sw.Status, action)
	if err != nil {
		s.logger.Warn("head decide illegal transition",
			zap.String("shiftswap_id", id),
			zap.String("from_status", sw.Status),
			zap.String("action", string(action)),
		)
		return ShiftSwapResponse{}, err
	}
	if tr.NeedsReason && comment == "" {
		return ShiftSwapResponse{}, shiftswaperrors.ErrRejectionReasonRequired
	}

	now := time.Now().UTC()
	sw.Status = tr.To
	switch tr.To {
	case workflow.StatusApproved:
		sw.ApprovedBy = &actorUUID
		sw.ApprovedAt = &now
	case workflow.StatusRejected:
		sw.RejectionReason = &comment
	}

	if err := qtx.Update(ctx, sw); err != nil {
		s.logger.Error("head decide persist failed", zap.Error(err))
		return ShiftSwapResponse{}, err
	}

	if err := s.queueDecidedEvent(ctx, tx, rid, sw, sub.EmployeeID, comment); err != nil {
		return ShiftSwapResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("head decide commit failed", zap.Error(err))
		return ShiftSwapResponse{}, err
	}

	s.logger.Info("head decide success",
		zap.String("shiftswap_id", id),
		zap.String("status", sw.Status),
		zap.String("decided_by", sub.EmployeeID),
	)

	return mapToResponse(*sw), nil
}

func (s *service) Stats(ctx context.Context, sub authz.Subject) (ShiftSwapStatsResponse, error) {
	res := authz.Resolve(sub)

	var (
		reqs []ShiftSwapRequest
		err  error
	)
	switch {
	case !res.CanSupervise:
		reqs, err = s.repo.FindByRequester(ctx, sub.EmployeeID)
	case res.ManagedDepartment == authz.DepartmentAll:
		reqs, err = s.repo.FindAll(ctx)
	default:
		reqs, err = s.repo.FindByDepartment(ctx, res.ManagedDepartment)
	}
	if err != nil {
		return ShiftSwapStatsResponse{}, err
	}

	records := make([]report.Record, len(reqs))
	for i, sw := range reqs {
		requester := sw.RequesterID.String()
		if sw.Requester != nil {
			requester = sw.Requester.FullName
		}
		records[i] = report.Record{
			Status:    sw.Status,
			CreatedAt: sw.CreatedAt,
			Requester: requester,
			Dimension: sw.ShiftType,
		}
	}

	return ShiftSwapStatsResponse{Summary: report.Summarize(records, time.Now())}, nil
}

func (s *service) checkVisibility(sub authz.Subject, sw *ShiftSwapRequest) error {
	if sw.RequesterID.String() == sub.EmployeeID || sw.ReplacementID.String() == sub.EmployeeID {
		return nil
	}
	if authz.CanViewDepartment(authz.Resolve(sub), sw.Department) {
		return nil
	}
	return shiftswaperrors.ErrNotVisible
}

func (s *service) queueCreatedEvent(ctx context.Context, tx *sql.Tx, rid string, sw *ShiftSwapRequest) error {
	if s.outbox == nil {
		return nil
	}

	event := events.RequestCreatedEvent{
		EventType:     "request_created",
		RequestKind:   string(workflow.KindShiftSwap),
		RequestID:     sw.ID.String(),
		RequestNumber: sw.RequestNumber,
		EmployeeID:    sw.RequesterID.String(),
		Department:    sw.Department,
		OccurredAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "shift_swap_request",
		AggregateID:   sw.ID.String(),
		EventType:     event.EventType,
		Topic:         events.RequestCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) queueDecidedEvent(ctx context.Context, tx *sql.Tx, rid string, sw *ShiftSwapRequest, decidedBy, reason string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.RequestDecidedEvent{
		EventType:     "request_decided",
		RequestKind:   string(workflow.KindShiftSwap),
		RequestID:     sw.ID.String(),
		RequestNumber: sw.RequestNumber,
		EmployeeID:    sw.RequesterID.String(),
		Status:        sw.Status,
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
		AggregateType: "shift_swap_request",
		AggregateID:   sw.ID.String(),
		EventType:     event.EventType,
		Topic:         events.RequestDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shiftswaperrors.ErrShiftSwapNotFound
	}
	return err
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, shiftswaperrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(sw ShiftSwapRequest) ShiftSwapResponse {
	resp := ShiftSwapResponse{
		ID:            sw.ID.String(),
		RequestNumber: sw.RequestNumber,
		RequesterID:   sw.RequesterID.String(),
		ReplacementID: sw.ReplacementID.String(),
		Department:    sw.Department,
		ShiftDate:     sw.ShiftDate.Format("2006-01-02"),
		ShiftType:     sw.ShiftType,
		ProposedDate:  sw.ProposedDate.Format("2006-01-02"),
		Reason:        sw.Reason,
		Status:        sw.Status,
		CreatedAt:     sw.CreatedAt.Format(time.RFC3339),
	}
	if sw.Requester != nil {
		resp.RequesterName = sw.Requester.FullName
	}
	if sw.Replacement != nil {
		resp.ReplacementName = sw.Replacement.FullName
	}
	resp.SignOffComment = sw.SignOffComment
	if sw.SignOffAt != nil {
		v := sw.SignOffAt.Format(time.RFC3339)
		resp.SignOffAt = &v
	}
	if sw.ApprovedBy != nil {
		v := sw.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if sw.ApprovedAt != nil {
		v := sw.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	resp.RejectionReason = sw.RejectionReason
	for _, a := range workflow.Actions(workflow.KindShiftSwap, sw.Status) {
		resp.AllowedActions = append(resp.AllowedActions, string(a))
	}
	return resp
}

func mapToListResponse(reqs []ShiftSwapRequest) []ShiftSwapResponse {
	resp := make([]ShiftSwapResponse, len(reqs))
	for i, sw := range reqs {
		resp[i] = mapToResponse(sw)
	}
	return resp
}
