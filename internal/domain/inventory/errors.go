package inventory

import (
	apperrors "github.com/libreria/backoffice/pkg/errors"
)

var (
	// ErrInventoryNotFound 库存记录不存在
	ErrInventoryNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeInventoryNotFound, "Item de inventario no encontrado")

	// ErrInsufficientStock 库存不足(包括图书没有库存记录)
	ErrInsufficientStock = apperrors.New(apperrors.KindBusinessRule, apperrors.ErrCodeInsufficientStock, "No hay suficiente stock disponible")

	// ErrInvalidStock 库存不能为负数
	ErrInvalidStock = apperrors.New(apperrors.KindInvalidParams, apperrors.ErrCodeInvalidParams, "El stock no puede ser negativo")
)
