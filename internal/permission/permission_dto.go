package permission

import "go-talento/internal/report"

type CreatePermissionRequest struct {
	PermissionType string `json:"tipo" binding:"required"`
	StartDate      string `json:"fecha_inicio" binding:"required"`
	EndDate        string `json:"fecha_fin" binding:"required"`
	Reason         string `json:"motivo"`
}

// DecidePermissionRequest es el cuerpo de PUT /:id/estado: el estado
// destino y, para rechazos, el motivo.
type DecidePermissionRequest struct {
	Status string `json:"estado" binding:"required,oneof=APPROVED REJECTED"`
	Reason string `json:"motivo"`
}

type PermissionResponse struct {
	ID              string   `json:"id"`
	RequestNumber   string   `json:"radicado"`
	EmployeeID      string   `json:"employee_id"`
	EmployeeName    string   `json:"employee_name,omitempty"`
	Department      string   `json:"area,omitempty"`
	PermissionType  string   `json:"tipo"`
	StartDate       string   `json:"fecha_inicio"`
	EndDate         string   `json:"fecha_fin"`
	TotalDays       int      `json:"total_dias"`
	Reason          string   `json:"motivo,omitempty"`
	Status          string   `json:"estado"`
	ApprovedBy      *string  `json:"aprobado_por,omitempty"`
	ApprovedAt      *string  `json:"aprobado_en,omitempty"`
	RejectionReason *string  `json:"motivo_rechazo,omitempty"`
	AllowedActions  []string `json:"acciones,omitempty"`
	CreatedAt       string   `json:"creado_en"`
}

type PermissionStatsResponse struct {
	report.Summary
}
