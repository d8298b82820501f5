package severance

import "go-talento/internal/report"

type CreateSeveranceRequest struct {
	WithdrawalMethod string `json:"metodo_retiro" binding:"required"`
	RequestedAmount  int64  `json:"monto_solicitado" binding:"required,gt=0"`
	Reason           string `json:"motivo"`
}

// ApproveSeveranceRequest exige el monto aprobado; puede ser menor al
// solicitado.
type ApproveSeveranceRequest struct {
	ApprovedAmount int64 `json:"monto_aprobado" binding:"required,gt=0"`
}

type RejectSeveranceRequest struct {
	Reason string `json:"motivo" binding:"required"`
}

type SeveranceResponse struct {
	ID               string   `json:"id"`
	RequestNumber    string   `json:"radicado"`
	EmployeeID       string   `json:"empleado_id"`
	EmployeeName     string   `json:"empleado,omitempty"`
	Department       string   `json:"area,omitempty"`
	WithdrawalMethod string   `json:"metodo_retiro"`
	RequestedAmount  int64    `json:"monto_solicitado"`
	ApprovedAmount   *int64   `json:"monto_aprobado,omitempty"`
	Reason           string   `json:"motivo,omitempty"`
	Status           string   `json:"estado"`
	ApprovedBy       *string  `json:"aprobado_por,omitempty"`
	ApprovedAt       *string  `json:"aprobado_en,omitempty"`
	RejectionReason  *string  `json:"motivo_rechazo,omitempty"`
	AllowedActions   []string `json:"acciones,omitempty"`
	CreatedAt        string   `json:"creado_en"`
}

type SeveranceStatsResponse struct {
	report.Summary
}
