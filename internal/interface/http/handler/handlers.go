package handler

// Handlers 路由注册需要的全部处理器
type Handlers struct {
	Health    *HealthHandler
	Book      *BookHandler
	Client    *ClientHandler
	Sale      *SaleHandler
	Inventory *InventoryHandler
	Provider  *ProviderHandler
	Employee  *EmployeeHandler
}
