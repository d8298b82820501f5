package permission

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
	permissionerrors "go-talento/internal/permission/errors"
	"go-talento/internal/report"
	"go-talento/internal/shared/contextutil"
	"go-talento/internal/shared/counter"
	"go-talento/internal/workflow"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, sub authz.Subject, req CreatePermissionRequest) (PermissionResponse, error)
	List(ctx context.Context, sub authz.Subject) ([]PermissionResponse, error)
	GetByID(ctx context.Context, sub authz.Subject, id string) (PermissionResponse, error)
	Decide(ctx context.Context, sub authz.Subject, id string, req DecidePermissionRequest) (PermissionResponse, error)
	Stats(ctx context.Context, sub authz.Subject) (PermissionStatsResponse, error)
	Certificate(ctx context.Context, sub authz.Subject, id string) ([]byte, string, error)
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
	l := zap.L().Named("permission.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("permission.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, sub authz.Subject, req CreatePermissionRequest) (PermissionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create permission requested",
		zap.String("request_id", rid),
		zap.String("employee_id", sub.EmployeeID),
		zap.String("tipo", req.PermissionType),
	)

	employeeUUID, err := uuid.Parse(sub.EmployeeID)
	if err != nil {
		return PermissionResponse{}, permissionerrors.ErrInvalidActorID
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return PermissionResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return PermissionResponse{}, err
	}
	if startDate.After(endDate) {
		return PermissionResponse{}, permissionerrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create permission begin tx failed", zap.Error(err))
		return PermissionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	nextVal, err := s.counter.GetNextValue(ctx, counter.TypePermission)
	if err != nil {
		s.logger.Error("create permission generate radicado failed", zap.Error(err))
		return PermissionResponse{}, err
	}

	p := &PermissionRequest{
		ID:             uuid.New(),
		RequestNumber:  fmt.Sprintf("PER-%06d", nextVal),
		EmployeeID:     employeeUUID,
		Department:     sub.Department,
		PermissionType: req.PermissionType,
		StartDate:      startDate,
		EndDate:        endDate,
		TotalDays:      int(endDate.Sub(startDate).Hours()/24) + 1,
		Reason:         req.Reason,
		Status:         workflow.StatusPending,
	}

	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Error("create permission persist failed", zap.Error(err))
		return PermissionResponse{}, err
	}

	if err := s.queueCreatedEvent(ctx, tx, rid, p); err != nil {
		return PermissionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create permission commit failed", zap.Error(err))
		return PermissionResponse{}, err
	}

	s.logger.Info("create permission success",
		zap.String("request_id", rid),
		zap.String("permission_id", p.ID.String()),
		zap.String("radicado", p.RequestNumber),
	)

	return mapToResponse(*p), nil
}

func (s *service) List(ctx context.Context, sub authz.Subject) ([]PermissionResponse, error) {
	res := authz.Resolve(sub)

	var (
		reqs []PermissionRequest
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
		s.logger.Error("list permissions failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(reqs), nil
}

func (s *service) GetByID(ctx context.Context, sub authz.Subject, id string) (PermissionResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PermissionResponse{}, mapNotFound(err)
	}

	if err := s.checkVisibility(sub, p); err != nil {
		return PermissionResponse{}, err
	}

	return mapToResponse(*p), nil
}

// Decide ejecuta PUT /:id/estado: aprueba o rechaza un permiso pendiente.
// Solo el jefe del área del solicitante (o un supervisor con alcance sobre
// ella) puede decidir; la tabla de transiciones rechaza acciones sobre
// estados terminales aunque la petición llegue de una pestaña desactualizada.
func (s *service) Decide(ctx context.Context, sub authz.Subject, id string, req DecidePermissionRequest) (PermissionResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	action := workflow.ActionApprove
	if req.Status == workflow.StatusRejected {
		action = workflow.ActionReject
	}

	actorUUID, err := uuid.Parse(sub.EmployeeID)
	if err != nil {
		return PermissionResponse{}, permissionerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide permission begin tx failed", zap.Error(err))
		return PermissionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PermissionResponse{}, mapNotFound(err)
	}

	res := authz.Resolve(sub)
	if !authz.CanDecideFor(res, p.Department) {
		s.logger.Warn("decide permission forbidden",
			zap.String("permission_id", id),
			zap.String("actor_id", sub.EmployeeID),
			zap.String("department", p.Department),
		)
		return PermissionResponse{}, permissionerrors.ErrNotDepartmentHead
	}

	tr, err := workflow.Next(workflow.KindPermission, p.Status, action)
	if err != nil {
		s.logger.Warn("decide permission illegal transition",
			zap.String("permission_id", id),
			zap.String("from_status", p.Status),
			zap.String("action", string(action)),
		)
		return PermissionResponse{}, err
	}
	if tr.NeedsReason && req.Reason == "" {
		return PermissionResponse{}, permissionerrors.ErrRejectionReasonRequired
	}

	p.Status = tr.To
	switch tr.To {
	case workflow.StatusApproved:
		p.ApprovedBy = &actorUUID
		now := time.Now().UTC()
		p.ApprovedAt = &now
		p.RejectionReason = nil
	case workflow.StatusRejected:
		p.ApprovedBy = nil
		p.ApprovedAt = nil
		p.RejectionReason = &req.Reason
	}

	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("decide permission persist failed", zap.Error(err))
		return PermissionResponse{}, err
	}

	if err := s.queueDecidedEvent(ctx, tx, rid, p, sub.EmployeeID, req.Reason); err != nil {
		return PermissionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide permission commit failed", zap.Error(err))
		return PermissionResponse{}, err
	}

	s.logger.Info("decide permission success",
		zap.String("permission_id", id),
		zap.String("status", p.Status),
		zap.String("decided_by", sub.EmployeeID),
	)

	return mapToResponse(*p), nil
}

func (s *service) Stats(ctx context.Context, sub authz.Subject) (PermissionStatsResponse, error) {
	res := authz.Resolve(sub)

	var (
		reqs []PermissionRequest
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
		return PermissionStatsResponse{}, err
	}

	records := make([]report.Record, len(reqs))
	for i, p := range reqs {
		requester := p.EmployeeID.String()
		if p.Employee != nil {
			requester = p.Employee.FullName
		}
		records[i] = report.Record{
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
			Requester: requester,
			Dimension: p.PermissionType,
		}
	}

	return PermissionStatsResponse{Summary: report.Summarize(records, time.Now())}, nil
}

func (s *service) Certificate(ctx context.Context, sub authz.Subject, id string) ([]byte, string, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", mapNotFound(err)
	}

	if err := s.checkVisibility(sub, p); err != nil {
		return nil, "", err
	}
	if p.Status != workflow.StatusApproved {
		return nil, "", permissionerrors.ErrCertificateNotApproved
	}

	pdf, err := buildCertificate(*p)
	if err != nil {
		s.logger.Error("build permission certificate failed",
			zap.String("permission_id", id),
			zap.Error(err),
		)
		return nil, "", err
	}

	filename := fmt.Sprintf("constancia-%s.pdf", p.RequestNumber)
	return pdf, filename, nil
}

func (s *service) checkVisibility(sub authz.Subject, p *PermissionRequest) error {
	if p.EmployeeID.String() == sub.EmployeeID {
		return nil
	}
	if authz.CanViewDepartment(authz.Resolve(sub), p.Department) {
		return nil
	}
	return permissionerrors.ErrNotVisible
}

func (s *service) queueCreatedEvent(ctx context.Context, tx *sql.Tx, rid string, p *PermissionRequest) error {
	if s.outbox == nil {
		return nil
	}

	event := events.RequestCreatedEvent{
		EventType:     "request_created",
		RequestKind:   string(workflow.KindPermission),
		RequestID:     p.ID.String(),
		RequestNumber: p.RequestNumber,
		EmployeeID:    p.EmployeeID.String(),
		Department:    p.Department,
		OccurredAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "permission_request",
		AggregateID:   p.ID.String(),
		EventType:     event.EventType,
		Topic:         events.RequestCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) queueDecidedEvent(ctx context.Context, tx *sql.Tx, rid string, p *PermissionRequest, decidedBy, reason string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.RequestDecidedEvent{
		EventType:     "request_decided",
		RequestKind:   string(workflow.KindPermission),
		RequestID:     p.ID.String(),
		RequestNumber: p.RequestNumber,
		EmployeeID:    p.EmployeeID.String(),
		Status:        p.Status,
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
		AggregateType: "permission_request",
		AggregateID:   p.ID.String(),
		EventType:     event.EventType,
		Topic:         events.RequestDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return permissionerrors.ErrPermissionNotFound
	}
	return err
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, permissionerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(p PermissionRequest) PermissionResponse {
	resp := PermissionResponse{
		ID:             p.ID.String(),
		RequestNumber:  p.RequestNumber,
		EmployeeID:     p.EmployeeID.String(),
		Department:     p.Department,
		PermissionType: p.PermissionType,
		StartDate:      p.StartDate.Format("2006-01-02"),
		EndDate:        p.EndDate.Format("2006-01-02"),
		TotalDays:      p.TotalDays,
		Reason:         p.Reason,
		Status:         p.Status,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
	if p.Employee != nil {
		resp.EmployeeName = p.Employee.FullName
	}
	if p.ApprovedBy != nil {
		v := p.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if p.ApprovedAt != nil {
		v := p.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	resp.RejectionReason = p.RejectionReason
	for _, a := range workflow.Actions(workflow.KindPermission, p.Status) {
		resp.AllowedActions = append(resp.AllowedActions, string(a))
	}
	return resp
}

func mapToListResponse(reqs []PermissionRequest) []PermissionResponse {
	resp := make([]PermissionResponse, len(reqs))
	for i, p := range reqs {
		resp[i] = mapToResponse(p)
	}
	return resp
}
