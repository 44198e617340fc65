package database

import (
	"time"

	"github.com/shopspring/decimal"
)

// 数据模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain层实体不依赖GORM,Repository负责两者之间的转换
// 3. 表名和列名沿用原有数据库(西班牙语),前端直接按列名读取
// 4. 外键通过关联字段声明,AutoMigrate时一并创建

// ProviderModel 供应商
type ProviderModel struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"column:nombre;size:255;not null"`
	Contact string `gorm:"column:contacto;size:255"`
	Phone   string `gorm:"column:telefono;size:50"`
	Email   string `gorm:"column:email;size:255"`
}

func (ProviderModel) TableName() string {
	return "proveedores"
}

// BookModel 图书
type BookModel struct {
	ID         uint            `gorm:"primaryKey"`
	Title      string          `gorm:"column:titulo;size:255;not null"`
	Author     string          `gorm:"column:autor;size:255"`
	Year       int             `gorm:"column:anio"`
	Category   string          `gorm:"column:categoria;size:100"`
	Price      decimal.Decimal `gorm:"column:precio;type:numeric(10,2);not null;default:0"`
	ProviderID *uint           `gorm:"column:id_proveedor;index"`
	Provider   *ProviderModel  `gorm:"foreignKey:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (BookModel) TableName() string {
	return "libros"
}

// ClientModel 客户
type ClientModel struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"column:nombre;size:255;not null"`
	Email   string `gorm:"column:email;size:255"`
	Phone   string `gorm:"column:telefono;size:50"`
	Address string `gorm:"column:direccion;size:500"`
}

func (ClientModel) TableName() string {
	return "clientes"
}

// EmployeeModel 员工
type EmployeeModel struct {
	ID       uint       `gorm:"primaryKey"`
	Name     string     `gorm:"column:nombre;size:255;not null"`
	Position string     `gorm:"column:cargo;size:100"`
	Email    string     `gorm:"column:email;size:255"`
	HireDate *time.Time `gorm:"column:fecha_ingreso;type:date"`
}

func (EmployeeModel) TableName() string {
	return "empleados"
}

// InventoryModel 库存(每本书一行)
type InventoryModel struct {
	ID          uint       `gorm:"primaryKey"`
	BookID      uint       `gorm:"column:id_libro;uniqueIndex;not null"`
	Book        *BookModel `gorm:"foreignKey:BookID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Stock       int        `gorm:"column:stock;not null;default:0"`
	LastUpdated time.Time  `gorm:"column:ultima_actualizacion"`
}

func (InventoryModel) TableName() string {
	return "inventario"
}

// SaleModel 销售
type SaleModel struct {
	ID           uint           `gorm:"primaryKey"`
	ClientID     uint           `gorm:"column:id_cliente;index;not null"`
	Client       *ClientModel   `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	BookID       uint           `gorm:"column:id_libro;index;not null"`
	Book         *BookModel     `gorm:"foreignKey:BookID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	EmployeeID   uint           `gorm:"column:id_empleado;index;not null"`
	Employee     *EmployeeModel `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	PurchaseDate time.Time      `gorm:"column:fecha_compra;type:date;not null"`
	Quantity     int            `gorm:"column:cantidad;not null"`
}

func (SaleModel) TableName() string {
	return "ventas"
}

// allModels AutoMigrate的顺序(被引用的表在前)
func allModels() []interface{} {
	return []interface{}{
		&ProviderModel{},
		&BookModel{},
		&ClientModel{},
		&EmployeeModel{},
		&InventoryModel{},
		&SaleModel{},
	}
}
