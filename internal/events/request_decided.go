package events

import "time"

const RequestDecidedTopic = "hr.solicitud.decision.v1"

// RequestDecidedEvent se emite cuando una solicitud (permiso, cambio de
// turno o cesantías) llega a un estado terminal o intermedio por acción
// de un revisor.
type RequestDecidedEvent struct {
	EventType     string    `json:"event_type"`
	RequestKind   string    `json:"request_kind"`
	RequestID     string    `json:"request_id"`
	RequestNumber string    `json:"request_number"`
	EmployeeID    string    `json:"employee_id"`
	Status        string    `json:"status"`
	DecidedBy     string    `json:"decided_by"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
