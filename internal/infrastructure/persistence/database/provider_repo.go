package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/libreria/backoffice/internal/domain/provider"
)

type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository 创建供应商仓储
func NewProviderRepository(db *gorm.DB) provider.Repository {
	return &providerRepository{db: db}
}

func (r *providerRepository) List(ctx context.Context) ([]*provider.Provider, error) {
	var models []ProviderModel
	if err := conn(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, translate(err, "Error al obtener los proveedores")
	}

	providers := make([]*provider.Provider, len(models))
	for i := range models {
		providers[i] = toProviderEntity(&models[i])
	}
	return providers, nil
}

func (r *providerRepository) FindByID(ctx context.Context, id uint) (*provider.Provider, error) {
	var model ProviderModel
	if err := conn(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, provider.ErrProviderNotFound
		}
		return nil, translate(err, "Error al obtener el proveedor")
	}
	return toProviderEntity(&model), nil
}

func (r *providerRepository) Create(ctx context.Context, p *provider.Provider) error {
	model := &ProviderModel{Name: p.Name, Contact: p.Contact, Phone: p.Phone, Email: p.Email}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "Error al crear el proveedor")
	}
	p.ID = model.ID
	return nil
}

func (r *providerRepository) Update(ctx context.Context, p *provider.Provider) error {
	db := conn(ctx, r.db)
	result := db.Model(&ProviderModel{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"nombre":   p.Name,
		"contacto": p.Contact,
		"telefono": p.Phone,
		"email":    p.Email,
	})
	if result.Error != nil {
		return translate(result.Error, "Error al actualizar el proveedor")
	}

	if result.RowsAffected == 0 {
		ok, err := exists(db, &ProviderModel{}, p.ID)
		if err != nil {
			return translate(err, "Error al actualizar el proveedor")
		}
		if !ok {
			return provider.ErrProviderNotFound
		}
	}
	return nil
}

func (r *providerRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&ProviderModel{}, id)
	if result.Error != nil {
		return translate(result.Error, "Error al eliminar el proveedor")
	}
	if result.RowsAffected == 0 {
		return provider.ErrProviderNotFound
	}
	return nil
}

func toProviderEntity(m *ProviderModel) *provider.Provider {
	return &provider.Provider{
		ID:      m.ID,
		Name:    m.Name,
		Contact: m.Contact,
		Phone:   m.Phone,
		Email:   m.Email,
	}
}
