package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/libreria/backoffice/internal/domain/client"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository 创建客户仓储
func NewClientRepository(db *gorm.DB) client.Repository {
	return &clientRepository{db: db}
}

func (r *clientRepository) List(ctx context.Context) ([]*client.Client, error) {
	var models []ClientModel
	if err := conn(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, translate(err, "Error al obtener los clientes")
	}

	clients := make([]*client.Client, len(models))
	for i := range models {
		clients[i] = toClientEntity(&models[i])
	}
	return clients, nil
}

func (r *clientRepository) FindByID(ctx context.Context, id uint) (*client.Client, error) {
	var model ClientModel
	if err := conn(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, client.ErrClientNotFound
		}
		return nil, translate(err, "Error al obtener el cliente")
	}
	return toClientEntity(&model), nil
}

func (r *clientRepository) Create(ctx context.Context, c *client.Client) error {
	model := &ClientModel{Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "Error al crear el cliente")
	}
	c.ID = model.ID
	return nil
}

func (r *clientRepository) Update(ctx context.Context, c *client.Client) error {
	db := conn(ctx, r.db)
	result := db.Model(&ClientModel{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"nombre":    c.Name,
		"email":     c.Email,
		"telefono":  c.Phone,
		"direccion": c.Address,
	})
	if result.Error != nil {
		return translate(result.Error, "Error al actualizar el cliente")
	}

	if result.RowsAffected == 0 {
		ok, err := exists(db, &ClientModel{}, c.ID)
		if err != nil {
			return translate(err, "Error al actualizar el cliente")
		}
		if !ok {
			return client.ErrClientNotFound
		}
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&ClientModel{}, id)
	if result.Error != nil {
		return translate(result.Error, "Error al eliminar el cliente")
	}
	if result.RowsAffected == 0 {
		return client.ErrClientNotFound
	}
	return nil
}

func toClientEntity(m *ClientModel) *client.Client {
	return &client.Client{
		ID:      m.ID,
		Name:    m.Name,
		Email:   m.Email,
		Phone:   m.Phone,
		Address: m.Address,
	}
}
