package provider

// Provider 供应商实体
// 一个供应商可以关联多本图书(libros.id_proveedor)
type Provider struct {
	ID      uint
	Name    string // 名称
	Contact string // 联系人
	Phone   string
	Email   string
}
