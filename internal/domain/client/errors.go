package client

import (
	apperrors "github.com/libreria/backoffice/pkg/errors"
)

var (
	ErrClientNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeClientNotFound, "Cliente no encontrado")

	// ErrClientHasSales 存在关联销售记录,不能删除
	ErrClientHasSales = apperrors.New(apperrors.KindBusinessRule, apperrors.ErrCodeHasDependents, "No se puede eliminar el cliente porque tiene ventas asociadas")
)
