package notification

type NotificationResponse struct {
	ID            string `json:"id"`
	RequestKind   string `json:"request_kind"`
	RequestID     string `json:"request_id"`
	RequestNumber string `json:"request_number,omitempty"`
	Status        string `json:"status"`
	Message       string `json:"message"`
	Read          bool   `json:"read"`
	CreatedAt     string `json:"created_at"`
}
