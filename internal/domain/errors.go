package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrStorageFull     = errors.New("almacenamiento local sin espacio")
	ErrVersionMismatch = errors.New("versión de respaldo distinta a la esperada")
	ErrConfirmRequired = errors.New("la operación requiere confirmación")
	ErrLastTemplate    = errors.New("debe quedar al menos una plantilla")
)
