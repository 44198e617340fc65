package employee

import "time"

// Employee 员工实体
type Employee struct {
	ID       uint
	Name     string
	Position string // 职位(cargo)
	Email    string
	HireDate *time.Time // 入职日期,可为空
}
