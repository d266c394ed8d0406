package domain

// DeliveryStatus 配送状态
type DeliveryStatus string

const (
	DeliveryReady DeliveryStatus = "READY" // 待配送
	DeliveryComp  DeliveryStatus = "COMP"  // 配送完成
)

// Delivery 配送实体，与订单一对一
type Delivery struct {
	ID      uint
	Address Address

	status DeliveryStatus
	order  *Order
}

// NewDelivery 创建待配送的配送单
func NewDelivery(address Address) *Delivery {
	return &Delivery{Address: address, status: DeliveryReady}
}

// RestoreDelivery 从存储重建配送单（仓储专用）
func RestoreDelivery(id uint, address Address, status DeliveryStatus) *Delivery {
	if status == "" {
		status = DeliveryReady
	}
	return &Delivery{ID: id, Address: address, status: status}
}

// Status 配送状态
func (d *Delivery) Status() DeliveryStatus {
	return d.status
}

// Order 所属订单
func (d *Delivery) Order() *Order {
	return d.order
}

// Complete 标记配送完成
// 重复调用是幂等的
func (d *Delivery) Complete() {
	d.status = DeliveryComp
}
