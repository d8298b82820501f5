package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Recurso no encontrado",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"No tiene permiso para acceder a este recurso",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Ocurrió un error inesperado",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Se requiere autenticación",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Los datos enviados no son válidos",
		http.StatusBadRequest,
	)
)

func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s es obligatorio", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s no es válido", field),
		http.StatusBadRequest,
	)
}
