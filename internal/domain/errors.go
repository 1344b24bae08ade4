package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Todo error de infraestructura se normaliza a uno de estos antes de llegar
// a los handlers; ninguno se traga en silencio.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrTransient          = errors.New("servicio no disponible temporalmente")
	ErrPhaseGate          = errors.New("la fase actual no permite avanzar")
	ErrSessionExpired     = errors.New("sesión de alta expirada o cancelada")
	ErrPartialCommit      = errors.New("alta parcialmente aplicada: queda un registro logístico sin venta asociada")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
