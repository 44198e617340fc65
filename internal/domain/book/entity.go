package book

import (
	"github.com/shopspring/decimal"
)

// Book 图书实体
// 设计说明:
// 1. 价格使用decimal(numeric(10,2)),避免浮点数精度问题
// 2. ProviderID可为空(图书可以没有供应商)
// 3. 库存不在图书上,见inventory.Inventory(一对一)
type Book struct {
	ID         uint            `json:"id"`
	Title      string          `json:"titulo"`
	Author     string          `json:"autor"`
	Year       int             `json:"anio"`
	Category   string          `json:"categoria"`
	Price      decimal.Decimal `json:"precio"`
	ProviderID *uint           `json:"id_proveedor"`
}
