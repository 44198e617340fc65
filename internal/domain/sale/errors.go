package sale

import (
	apperrors "github.com/libreria/backoffice/pkg/errors"
)

var (
	ErrSaleNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeSaleNotFound, "Venta no encontrada")

	// ErrInvalidQuantity 数量必须大于0
	ErrInvalidQuantity = apperrors.New(apperrors.KindInvalidParams, apperrors.ErrCodeInvalidParams, "La cantidad debe ser mayor que cero")
)
