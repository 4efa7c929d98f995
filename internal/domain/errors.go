package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrSessionRequired   = errors.New("sesión requerida")

	// Taxonomía de fallos hacia el servicio remoto: transporte, estado HTTP
	// no exitoso, cuerpo ilegible y eliminación rechazada con success=false.
	ErrRemote         = errors.New("fallo de transporte hacia el servicio remoto")
	ErrRemoteStatus   = errors.New("respuesta no exitosa del servicio remoto")
	ErrRemoteBody     = errors.New("respuesta ilegible del servicio remoto")
	ErrDeleteRejected = errors.New("el servicio remoto rechazó la eliminación")
)
