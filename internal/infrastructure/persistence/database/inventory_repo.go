package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/libreria/backoffice/internal/domain/inventory"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository 创建库存仓储
func NewInventoryRepository(db *gorm.DB) inventory.Repository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) List(ctx context.Context) ([]*inventory.Inventory, error) {
	var models []InventoryModel
	if err := conn(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, translate(err, "Error al obtener el inventario")
	}

	items := make([]*inventory.Inventory, len(models))
	for i := range models {
		items[i] = toInventoryEntity(&models[i])
	}
	return items, nil
}

func (r *inventoryRepository) FindByID(ctx context.Context, id uint) (*inventory.Inventory, error) {
	var model InventoryModel
	if err := conn(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inventory.ErrInventoryNotFound
		}
		return nil, translate(err, "Error al obtener el item de inventario")
	}
	return toInventoryEntity(&model), nil
}

func (r *inventoryRepository) FindByBookID(ctx context.Context, bookID uint) (*inventory.Inventory, error) {
	var model InventoryModel
	if err := conn(ctx, r.db).Where("id_libro = ?", bookID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inventory.ErrInventoryNotFound
		}
		return nil, translate(err, "Error al obtener el item de inventario")
	}
	return toInventoryEntity(&model), nil
}

func (r *inventoryRepository) Create(ctx context.Context, inv *inventory.Inventory) error {
	model := &InventoryModel{BookID: inv.BookID, Stock: inv.Stock, LastUpdated: inv.LastUpdated}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "Error al crear el item de inventario")
	}
	inv.ID = model.ID
	return nil
}

func (r *inventoryRepository) Overwrite(ctx context.Context, id uint, stock int, at time.Time) (*inventory.Inventory, error) {
	db := conn(ctx, r.db)
	result := db.Model(&InventoryModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"stock":                stock,
		"ultima_actualizacion": at,
	})
	if result.Error != nil {
		return nil, translate(result.Error, "Error al actualizar el inventario")
	}
	// 影响0行时FindByID负责区分"不存在"
	return r.FindByID(ctx, id)
}

// Adjust 原子调整库存
// 检查和扣减是同一条UPDATE,并发扣减由数据库串行化,库存不会变成负数:
//
//	UPDATE inventario SET stock = stock + ?, ultima_actualizacion = ?
//	WHERE id_libro = ? AND stock + ? >= 0
func (r *inventoryRepository) Adjust(ctx context.Context, adj inventory.Adjustment) error {
	db := conn(ctx, r.db)
	query := db.Model(&InventoryModel{}).Where("id_libro = ?", adj.BookID)
	if adj.Guarded {
		query = query.Where("stock + ? >= 0", adj.Delta)
	}

	result := query.Updates(map[string]interface{}{
		"stock":                gorm.Expr("stock + ?", adj.Delta),
		"ultima_actualizacion": adj.At,
	})
	if result.Error != nil {
		return translate(result.Error, "Error al actualizar el inventario")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// 影响0行:库存记录不存在、库存不足,或(MySQL)值没有变化
	// 再查一次确定原因
	current, err := r.FindByBookID(ctx, adj.BookID)
	if errors.Is(err, inventory.ErrInventoryNotFound) {
		if adj.Guarded {
			return inventory.ErrInsufficientStock
		}
		return inventory.ErrInventoryNotFound
	}
	if err != nil {
		return err
	}
	if adj.Guarded && current.Stock+adj.Delta < 0 {
		return inventory.ErrInsufficientStock
	}
	return nil
}

func (r *inventoryRepository) DeleteByBookID(ctx context.Context, bookID uint) error {
	err := conn(ctx, r.db).Where("id_libro = ?", bookID).Delete(&InventoryModel{}).Error
	if err != nil {
		return translate(err, "Error al eliminar el libro")
	}
	return nil
}

func toInventoryEntity(m *InventoryModel) *inventory.Inventory {
	return &inventory.Inventory{
		ID:          m.ID,
		BookID:      m.BookID,
		Stock:       m.Stock,
		LastUpdated: m.LastUpdated,
	}
}
