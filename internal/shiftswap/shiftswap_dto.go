package shiftswap

import "go-talento/internal/report"

type CreateShiftSwapRequest struct {
	ReplacementID string `json:"reemplazo_id" binding:"required,uuid"`
	ShiftDate     string `json:"fecha_turno" binding:"required"`
	ShiftType     string `json:"tipo_turno" binding:"required"`
	ProposedDate  string `json:"fecha_propuesta" binding:"required"`
	Reason        string `json:"motivo"`
}

// SignOffRequest es el cuerpo del visto bueno del reemplazante. El
// comentario es opcional al aprobar y obligatorio al rechazar.
type SignOffRequest struct {
	Comment string `json:"comentario"`
}

type HeadDecisionRequest struct {
	Comment string `json:"comentario"`
}

type ShiftSwapResponse struct {
	ID              string   `json:"id"`
	RequestNumber   string   `json:"radicado"`
	RequesterID     string   `json:"solicitante_id"`
	RequesterName   string   `json:"solicitante,omitempty"`
	ReplacementID   string   `json:"reemplazo_id"`
	ReplacementName string   `json:"reemplazo,omitempty"`
	Department      string   `json:"area,omitempty"`
	ShiftDate       string   `json:"fecha_turno"`
	ShiftType       string   `json:"tipo_turno"`
	ProposedDate    string   `json:"fecha_propuesta"`
	Reason          string   `json:"motivo,omitempty"`
	Status          string   `json:"estado"`
	SignOffComment  *string  `json:"comentario_visto_bueno,omitempty"`
	SignOffAt       *string  `json:"visto_bueno_en,omitempty"`
	ApprovedBy      *string  `json:"aprobado_por,omitempty"`
	ApprovedAt      *string  `json:"aprobado_en,omitempty"`
	RejectionReason *string  `json:"motivo_rechazo,omitempty"`
	AllowedActions  []string `json:"acciones,omitempty"`
	CreatedAt       string   `json:"creado_en"`
}

type ShiftSwapStatsResponse struct {
	report.Summary
}
