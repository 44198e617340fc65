package employee

import (
	apperrors "github.com/libreria/backoffice/pkg/errors"
)

var (
	ErrEmployeeNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeEmployeeNotFound, "Empleado no encontrado")

	ErrEmployeeHasSales = apperrors.New(apperrors.KindBusinessRule, apperrors.ErrCodeHasDependents, "No se puede eliminar el empleado porque tiene ventas asociadas")
)
