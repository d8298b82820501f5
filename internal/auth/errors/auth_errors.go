package autherrors

import (
	"net/http"

	"go-talento/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Correo o contraseña incorrectos",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Token inválido",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"La sesión ha expirado, inicie sesión de nuevo",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Refresh token inválido",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"No tiene permiso para acceder a este recurso",
		http.StatusForbidden,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"Usuario no encontrado",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"user_id inválido",
		http.StatusBadRequest,
	)
	ErrUserInactive = apperror.New(
		apperror.CodeForbidden,
		"El usuario está inactivo",
		http.StatusForbidden,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Ya existe un usuario con ese correo",
		http.StatusConflict,
	)
)
