package sale

import (
	"time"

	"github.com/libreria/backoffice/internal/domain/inventory"
)

// 库存调整计划
// 纯函数:只计算需要对哪些图书做多少调整,不访问数据库
// 用例按返回顺序依次执行,Guarded的扣减排在回补之前,失败时不会产生任何写入

// PlanCreate 创建销售:扣减cantidad,时间戳为购买日期
func PlanCreate(s Sale) []inventory.Adjustment {
	return []inventory.Adjustment{{
		BookID:  s.BookID,
		Delta:   -s.Quantity,
		Guarded: true,
		At:      s.PurchaseDate,
	}}
}

// PlanUpdate 修改销售
// 同一本书:只调整差额,差额>0时需要校验库存
// 换书:新书扣减newQty(校验),旧书回补prevQty
func PlanUpdate(prev, next Sale) []inventory.Adjustment {
	if prev.BookID == next.BookID {
		delta := next.Quantity - prev.Quantity
		return []inventory.Adjustment{{
			BookID:  next.BookID,
			Delta:   -delta,
			Guarded: delta > 0,
			At:      next.PurchaseDate,
		}}
	}

	return []inventory.Adjustment{
		{BookID: next.BookID, Delta: -next.Quantity, Guarded: true, At: next.PurchaseDate},
		{BookID: prev.BookID, Delta: prev.Quantity, Guarded: false, At: next.PurchaseDate},
	}
}

// PlanDelete 删除销售:回补cantidad,时间戳为当前服务器时间
func PlanDelete(s Sale, now time.Time) []inventory.Adjustment {
	return []inventory.Adjustment{{
		BookID:  s.BookID,
		Delta:   s.Quantity,
		Guarded: false,
		At:      now,
	}}
}
