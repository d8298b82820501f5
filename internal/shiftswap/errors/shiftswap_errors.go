package shiftswaperrors

import (
	"net/http"

	"go-talento/internal/shared/apperror"
)

var (
	ErrShiftSwapNotFound = apperror.New(
		apperror.CodeNotFound,
		"solicitud de cambio de turno no encontrada",
		http.StatusNotFound,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"id del actor no válido",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"formato de fecha no válido, se espera YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrShiftDateInPast = apperror.New(
		apperror.CodeInvalidInput,
		"fecha_turno no puede estar en el pasado",
		http.StatusBadRequest,
	)
	ErrReplacementIsRequester = apperror.New(
		apperror.CodeInvalidInput,
		"el reemplazante no puede ser el mismo solicitante",
		http.StatusBadRequest,
	)
	ErrNotReplacement = apperror.New(
		apperror.CodeForbidden,
		"solo el reemplazante nominado puede dar el visto bueno",
		http.StatusForbidden,
	)
	ErrNotDepartmentHead = apperror.New(
		apperror.CodeForbidden,
		"solo el jefe del área del solicitante puede decidir esta solicitud",
		http.StatusForbidden,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"motivo es obligatorio al rechazar",
		http.StatusBadRequest,
	)
	ErrNotVisible = apperror.New(
		apperror.CodeForbidden,
		"no tiene acceso a esta solicitud",
		http.StatusForbidden,
	)
)
