package departmenterrors

import (
	"net/http"

	"go-talento/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"área no encontrada",
		http.StatusNotFound,
	)
	ErrDepartmentNameTaken = apperror.New(
		apperror.CodeConflict,
		"ya existe un área con ese nombre",
		http.StatusConflict,
	)
	ErrInvalidHeadID = apperror.New(
		apperror.CodeInvalidInput,
		"el jefe de área indicado no es válido",
		http.StatusBadRequest,
	)
)
