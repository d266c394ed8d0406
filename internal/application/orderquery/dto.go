package orderquery

import (
	"time"

	"github.com/xiebiao/jpashop/internal/domain"
)

// AddressDto 地址
type AddressDto struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

func toAddressDto(a domain.Address) AddressDto {
	return AddressDto{City: a.City, Street: a.Street, Zipcode: a.Zipcode}
}

// =========================================
// 由实体映射得到的DTO
// =========================================

// OrderDto 订单(含明细)
type OrderDto struct {
	OrderID     uint               `json:"order_id"`
	Name        string             `json:"name"`
	OrderDate   time.Time          `json:"order_date"`
	OrderStatus domain.OrderStatus `json:"order_status"`
	Address     AddressDto         `json:"address"`
	OrderItems  []OrderItemDto     `json:"order_items"`
}

// OrderItemDto 订单明细
type OrderItemDto struct {
	ItemName   string `json:"item_name"`
	OrderPrice int64  `json:"order_price"`
	Count      int    `json:"count"`
}

// SimpleOrderDto 订单(仅to-one关联)
type SimpleOrderDto struct {
	OrderID     uint               `json:"order_id"`
	Name        string             `json:"name"`
	OrderDate   time.Time          `json:"order_date"`
	OrderStatus domain.OrderStatus `json:"order_status"`
	Address     AddressDto         `json:"address"`
}

// NewOrderDto 从已加载明细的订单实体映射
func NewOrderDto(o *domain.Order) OrderDto {
	items := o.OrderItems()
	dto := OrderDto{
		OrderID:     o.ID,
		Name:        o.Member().Name,
		OrderDate:   o.OrderDate(),
		OrderStatus: o.Status(),
		Address:     toAddressDto(o.Delivery().Address),
		OrderItems:  make([]OrderItemDto, len(items)),
	}
	for i, it := range items {
		dto.OrderItems[i] = OrderItemDto{
			ItemName:   it.Item().Name,
			OrderPrice: it.OrderPrice(),
			Count:      it.Count(),
		}
	}
	return dto
}

// NewSimpleOrderDto 从订单实体映射，不访问明细
func NewSimpleOrderDto(o *domain.Order) SimpleOrderDto {
	return SimpleOrderDto{
		OrderID:     o.ID,
		Name:        o.Member().Name,
		OrderDate:   o.OrderDate(),
		OrderStatus: o.Status(),
		Address:     toAddressDto(o.Delivery().Address),
	}
}

// =========================================
// 直接由查询投影得到的DTO
// =========================================

// OrderQueryDto 订单投影
type OrderQueryDto struct {
	OrderID     uint                `json:"order_id"`
	Name        string              `json:"name"`
	OrderDate   time.Time           `json:"order_date"`
	OrderStatus domain.OrderStatus  `json:"order_status"`
	Address     AddressDto          `json:"address"`
	OrderItems  []OrderItemQueryDto `json:"order_items"`
}

// OrderItemQueryDto 订单明细投影
type OrderItemQueryDto struct {
	OrderID    uint   `json:"-"`
	ItemName   string `json:"item_name"`
	OrderPrice int64  `json:"order_price"`
	Count      int    `json:"count"`
}

// OrderFlatDto 扁平投影：每个(订单, 明细)一行
// 没有明细的订单输出一行，OrderItemID为0
type OrderFlatDto struct {
	OrderID     uint               `json:"order_id"`
	Name        string             `json:"name"`
	OrderDate   time.Time          `json:"order_date"`
	OrderStatus domain.OrderStatus `json:"order_status"`
	Address     AddressDto         `json:"address"`

	OrderItemID uint   `json:"order_item_id,omitempty"`
	ItemName    string `json:"item_name,omitempty"`
	OrderPrice  int64  `json:"order_price,omitempty"`
	Count       int    `json:"count,omitempty"`
}

// OrderSimpleQueryDto 订单投影(仅to-one关联)
type OrderSimpleQueryDto struct {
	OrderID     uint               `json:"order_id"`
	Name        string             `json:"name"`
	OrderDate   time.Time          `json:"order_date"`
	OrderStatus domain.OrderStatus `json:"order_status"`
	Address     AddressDto         `json:"address"`
}
