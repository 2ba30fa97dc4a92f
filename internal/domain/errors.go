package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrStoreUnavailable = errors.New("almacén de registros no disponible")

	// ErrBillNotCalculated la factura aún no tiene montos calculados.
	ErrBillNotCalculated = fmt.Errorf("%w: la factura no ha sido calculada", ErrInvalidInput)
)
