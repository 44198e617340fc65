package client

// Client 客户实体
type Client struct {
	ID      uint
	Name    string
	Email   string
	Phone   string
	Address string
}
