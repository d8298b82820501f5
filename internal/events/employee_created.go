package events

import "time"

const EmployeeCreatedTopic = "hr.empleado.creado.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Department string    `json:"department,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
