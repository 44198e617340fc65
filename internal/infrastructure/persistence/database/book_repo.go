package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/libreria/backoffice/internal/domain/book"
)

// bookRepository 图书仓储实现
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 驱动错误转换为应用错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := conn(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, translate(err, "Error al obtener los libros")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	if err := conn(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, translate(err, "Error al obtener el libro")
	}
	return toBookEntity(&model), nil
}

func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return translate(err, "Error al crear el libro")
	}
	// 回填自增ID
	b.ID = model.ID
	return nil
}

// Update 覆盖更新全部字段
// 不使用Save:Save在记录不存在时会插入
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	db := conn(ctx, r.db)
	result := db.Model(&BookModel{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"titulo":       b.Title,
		"autor":        b.Author,
		"anio":         b.Year,
		"categoria":    b.Category,
		"precio":       b.Price,
		"id_proveedor": b.ProviderID,
	})
	if result.Error != nil {
		return translate(result.Error, "Error al actualizar el libro")
	}

	if result.RowsAffected == 0 {
		ok, err := exists(db, &BookModel{}, b.ID)
		if err != nil {
			return translate(err, "Error al actualizar el libro")
		}
		if !ok {
			return book.ErrBookNotFound
		}
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&BookModel{}, id)
	if result.Error != nil {
		return translate(result.Error, "Error al eliminar el libro")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *bookRepository) CountByProviderID(ctx context.Context, providerID uint) (int64, error) {
	var n int64
	err := conn(ctx, r.db).Model(&BookModel{}).Where("id_proveedor = ?", providerID).Count(&n).Error
	if err != nil {
		return 0, translate(err, "Error al eliminar el proveedor")
	}
	return n, nil
}

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:         b.ID,
		Title:      b.Title,
		Author:     b.Author,
		Year:       b.Year,
		Category:   b.Category,
		Price:      b.Price,
		ProviderID: b.ProviderID,
	}
}

func toBookEntity(m *BookModel) *book.Book {
	return &book.Book{
		ID:         m.ID,
		Title:      m.Title,
		Author:     m.Author,
		Year:       m.Year,
		Category:   m.Category,
		Price:      m.Price,
		ProviderID: m.ProviderID,
	}
}
