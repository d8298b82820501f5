package bootstrap

import "context"

// AuditLog es un evento operativo del ciclo de vida del proceso
// (arranque, apagado) que debe quedar en la bitácora.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
