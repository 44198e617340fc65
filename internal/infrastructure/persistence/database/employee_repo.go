package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/libreria/backoffice/internal/domain/employee"
)

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository 创建员工仓储
func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	var models []EmployeeModel
	if err := conn(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, translate(err, "Error al obtener los empleados")
	}

	employees := make([]*employee.Employee, len(models))
	for i := range models {
		employees[i] = toEmployeeEntity(&models[i])
	}
	return employees, nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id uint) (*employee.Employee, error) {
	var model EmployeeModel
	if err := conn(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, translate(err, "Error al obtener el empleado")
	}
	return toEmployeeEntity(&model), nil
}

func (r *employeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	model := &EmployeeModel{Name: e.Name, Position: e.Position, Email: e.Email, HireDate: e.HireDate}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "Error al crear el empleado")
	}
	e.ID = model.ID
	return nil
}

func (r *employeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	db := conn(ctx, r.db)
	result := db.Model(&EmployeeModel{}).Where("id = ?", e.ID).Updates(map[string]interface{}{
		"nombre":        e.Name,
		"cargo":         e.Position,
		"email":         e.Email,
		"fecha_ingreso": e.HireDate,
	})
	if result.Error != nil {
		return translate(result.Error, "Error al actualizar el empleado")
	}

	if result.RowsAffected == 0 {
		ok, err := exists(db, &EmployeeModel{}, e.ID)
		if err != nil {
			return translate(err, "Error al actualizar el empleado")
		}
		if !ok {
			return employee.ErrEmployeeNotFound
		}
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&EmployeeModel{}, id)
	if result.Error != nil {
		return translate(result.Error, "Error al eliminar el empleado")
	}
	if result.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func toEmployeeEntity(m *EmployeeModel) *employee.Employee {
	return &employee.Employee{
		ID:       m.ID,
		Name:     m.Name,
		Position: m.Position,
		Email:    m.Email,
		HireDate: m.HireDate,
	}
}
