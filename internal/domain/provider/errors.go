package provider

import (
	apperrors "github.com/libreria/backoffice/pkg/errors"
)

// 供应商领域错误定义
var (
	// ErrProviderNotFound 供应商不存在
	ErrProviderNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeProviderNotFound, "Proveedor no encontrado")

	// ErrProviderHasBooks 存在关联图书,不能删除
	ErrProviderHasBooks = apperrors.New(apperrors.KindBusinessRule, apperrors.ErrCodeHasDependents, "No se puede eliminar el proveedor porque tiene libros asociados")
)
