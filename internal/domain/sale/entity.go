package sale

import "time"

// Sale 销售实体
// 每次创建/修改/删除都会在同一事务内产生对应的库存调整
type Sale struct {
	ID           uint
	ClientID     uint
	BookID       uint
	EmployeeID   uint
	PurchaseDate time.Time // fecha_compra
	Quantity     int       // cantidad
}

// Validate 校验销售数量
// allowNonPositive为true时接受cantidad<=0(此时创建销售会回补库存)
func (s *Sale) Validate(allowNonPositive bool) error {
	if s.Quantity <= 0 && !allowNonPositive {
		return ErrInvalidQuantity
	}
	return nil
}
