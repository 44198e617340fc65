package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/libreria/backoffice/internal/domain/sale"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository 创建销售仓储
func NewSaleRepository(db *gorm.DB) sale.Repository {
	return &saleRepository{db: db}
}

func (r *saleRepository) List(ctx context.Context) ([]*sale.Sale, error) {
	var models []SaleModel
	if err := conn(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, translate(err, "Error al obtener las ventas")
	}

	sales := make([]*sale.Sale, len(models))
	for i := range models {
		sales[i] = toSaleEntity(&models[i])
	}
	return sales, nil
}

func (r *saleRepository) FindByID(ctx context.Context, id uint) (*sale.Sale, error) {
	var model SaleModel
	if err := conn(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sale.ErrSaleNotFound
		}
		return nil, translate(err, "Error al obtener la venta")
	}
	return toSaleEntity(&model), nil
}

// LockByID 悲观锁查询销售记录
// SELECT * FROM ventas WHERE id = ? FOR UPDATE
// 必须通过conn(ctx)使用事务DB,否则锁在语句结束时就释放了
// SQLite不支持行锁,方言会忽略FOR UPDATE(SQLite写事务本身是串行的)
func (r *saleRepository) LockByID(ctx context.Context, id uint) (*sale.Sale, error) {
	var model SaleModel
	err := conn(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sale.ErrSaleNotFound
		}
		return nil, translate(err, "Error al obtener la venta")
	}
	return toSaleEntity(&model), nil
}

func (r *saleRepository) Create(ctx context.Context, s *sale.Sale) error {
	model := &SaleModel{
		ClientID:     s.ClientID,
		BookID:       s.BookID,
		EmployeeID:   s.EmployeeID,
		PurchaseDate: s.PurchaseDate,
		Quantity:     s.Quantity,
	}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "Error al crear la venta")
	}
	s.ID = model.ID
	return nil
}

func (r *saleRepository) Update(ctx context.Context, s *sale.Sale) error {
	db := conn(ctx, r.db)
	result := db.Model(&SaleModel{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"id_cliente":   s.ClientID,
		"id_libro":     s.BookID,
		"id_empleado":  s.EmployeeID,
		"fecha_compra": s.PurchaseDate,
		"cantidad":     s.Quantity,
	})
	if result.Error != nil {
		return translate(result.Error, "Error al actualizar la venta")
	}

	if result.RowsAffected == 0 {
		ok, err := exists(db, &SaleModel{}, s.ID)
		if err != nil {
			return translate(err, "Error al actualizar la venta")
		}
		if !ok {
			return sale.ErrSaleNotFound
		}
	}
	return nil
}

func (r *saleRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&SaleModel{}, id)
	if result.Error != nil {
		return translate(result.Error, "Error al eliminar la venta")
	}
	if result.RowsAffected == 0 {
		return sale.ErrSaleNotFound
	}
	return nil
}

func (r *saleRepository) CountByBookID(ctx context.Context, bookID uint) (int64, error) {
	return r.countBy(ctx, "id_libro", bookID)
}

func (r *saleRepository) CountByClientID(ctx context.Context, clientID uint) (int64, error) {
	return r.countBy(ctx, "id_cliente", clientID)
}

func (r *saleRepository) CountByEmployeeID(ctx context.Context, employeeID uint) (int64, error) {
	return r.countBy(ctx, "id_empleado", employeeID)
}

// countBy column只来自上面三个固定列名
func (r *saleRepository) countBy(ctx context.Context, column string, id uint) (int64, error) {
	var n int64
	err := conn(ctx, r.db).Model(&SaleModel{}).Where(column+" = ?", id).Count(&n).Error
	if err != nil {
		return 0, translate(err, "Error al obtener las ventas")
	}
	return n, nil
}

func toSaleEntity(m *SaleModel) *sale.Sale {
	return &sale.Sale{
		ID:           m.ID,
		ClientID:     m.ClientID,
		BookID:       m.BookID,
		EmployeeID:   m.EmployeeID,
		PurchaseDate: m.PurchaseDate,
		Quantity:     m.Quantity,
	}
}
