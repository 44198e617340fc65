package inventory

import "time"

// Inventory 库存实体
// 每本图书对应一行库存(id_libro唯一)
// 不变式:stock = 初始库存 - 该书所有有效销售的数量之和
type Inventory struct {
	ID          uint
	BookID      uint
	Stock       int
	LastUpdated time.Time // ultima_actualizacion
}

// Adjustment 一次库存调整
// Delta为正表示回补,为负表示扣减
// Guarded为true时调整后库存不能为负(不足则整个操作失败)
type Adjustment struct {
	BookID  uint      `json:"id_libro"`
	Delta   int       `json:"delta"`
	Guarded bool      `json:"guarded"`
	At      time.Time `json:"at"`
}
