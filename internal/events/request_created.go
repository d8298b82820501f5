package events

import "time"

const RequestCreatedTopic = "hr.solicitud.radicada.v1"

// RequestCreatedEvent se emite al radicar una nueva solicitud.
type RequestCreatedEvent struct {
	EventType     string    `json:"event_type"`
	RequestKind   string    `json:"request_kind"`
	RequestID     string    `json:"request_id"`
	RequestNumber string    `json:"request_number"`
	EmployeeID    string    `json:"employee_id"`
	Department    string    `json:"department,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
