package book

import (
	apperrors "github.com/libreria/backoffice/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeBookNotFound, "Libro no encontrado")

	// ErrBookHasSales 存在关联销售,不能删除
	ErrBookHasSales = apperrors.New(apperrors.KindBusinessRule, apperrors.ErrCodeHasDependents, "No se puede eliminar el libro porque tiene ventas asociadas")

	// ErrInvalidPrice 价格不能为负数
	ErrInvalidPrice = apperrors.New(apperrors.KindInvalidParams, apperrors.ErrCodeInvalidParams, "El precio no puede ser negativo")
)
