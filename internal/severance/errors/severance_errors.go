package severanceerrors

import (
	"net/http"

	"go-talento/internal/shared/apperror"
)

var (
	ErrSeveranceNotFound = apperror.New(
		apperror.CodeNotFound,
		"solicitud de cesantías no encontrada",
		http.StatusNotFound,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"id del actor no válido",
		http.StatusBadRequest,
	)
	ErrApprovedAmountRequired = apperror.New(
		apperror.CodeInvalidInput,
		"monto_aprobado es obligatorio al aprobar",
		http.StatusBadRequest,
	)
	ErrApprovedAmountExceedsRequested = apperror.New(
		apperror.CodeInvalidInput,
		"monto_aprobado no puede superar el monto solicitado",
		http.StatusBadRequest,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"motivo es obligatorio al rechazar",
		http.StatusBadRequest,
	)
	ErrNotAuthorizedReviewer = apperror.New(
		apperror.CodeForbidden,
		"no está autorizado para decidir esta solicitud",
		http.StatusForbidden,
	)
	ErrNotVisible = apperror.New(
		apperror.CodeForbidden,
		"no tiene acceso a esta solicitud",
		http.StatusForbidden,
	)
)
