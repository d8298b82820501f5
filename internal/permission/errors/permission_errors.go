package permissionerrors

import (
	"net/http"

	"go-talento/internal/shared/apperror"
)

var (
	ErrPermissionNotFound = apperror.New(
		apperror.CodeNotFound,
		"solicitud de permiso no encontrada",
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
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"fecha_inicio debe ser anterior o igual a fecha_fin",
		http.StatusBadRequest,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"motivo es obligatorio al rechazar",
		http.StatusBadRequest,
	)
	ErrNotDepartmentHead = apperror.New(
		apperror.CodeForbidden,
		"solo el jefe del área del solicitante puede decidir esta solicitud",
		http.StatusForbidden,
	)
	ErrNotVisible = apperror.New(
		apperror.CodeForbidden,
		"no tiene acceso a esta solicitud",
		http.StatusForbidden,
	)
	ErrCertificateNotApproved = apperror.New(
		apperror.CodeInvalidState,
		"la constancia solo está disponible para permisos aprobados",
		http.StatusBadRequest,
	)
)
