package dto

import (
	"time"

	"github.com/xiebiao/jpashop/internal/domain"
)

// CreateOrderRequest 下单请求
// 价格不由客户端传递，取下单时商品的当前价格
type CreateOrderRequest struct {
	MemberID uint `json:"member_id" binding:"required" example:"1"`
	ItemID   uint `json:"item_id" binding:"required" example:"1"`
	Count    int  `json:"count" binding:"required,min=1,max=999" example:"2"`
}

// ListOrdersRequest 订单检索条件
type ListOrdersRequest struct {
	MemberName  string `form:"member_name" binding:"omitempty,max=100" example:"USER1"`
	OrderStatus string `form:"order_status" binding:"omitempty,oneof=ORDER CANCEL" example:"ORDER"`
}

// ToSearch 转换为领域检索条件
func (r ListOrdersRequest) ToSearch() domain.OrderSearch {
	return domain.OrderSearch{MemberName: r.MemberName, Status: domain.OrderStatus(r.OrderStatus)}
}

// PageRequest offset/limit分页参数
type PageRequest struct {
	Offset int `form:"offset" binding:"omitempty,min=0" example:"0"`
	Limit  int `form:"limit" binding:"omitempty,min=0" example:"100"`
}

// OrderResponse 订单
type OrderResponse struct {
	OrderID        uint                `json:"order_id" example:"1"`
	MemberName     string              `json:"member_name" example:"USER1"`
	OrderDate      time.Time           `json:"order_date"`
	OrderStatus    string              `json:"order_status" example:"ORDER"`
	DeliveryStatus string              `json:"delivery_status" example:"READY"`
	Address        AddressResponse     `json:"address"`
	TotalPrice     int64               `json:"total_price" example:"20000"`
	OrderItems     []OrderItemResponse `json:"order_items"`
}

// OrderItemResponse 订单明细
type OrderItemResponse struct {
	ItemID     uint   `json:"item_id" example:"1"`
	ItemName   string `json:"item_name" example:"JPA in Action"`
	OrderPrice int64  `json:"order_price" example:"10000"`
	Count      int    `json:"count" example:"2"`
}

// NewOrderResponse 从领域实体构建
func NewOrderResponse(o *domain.Order) OrderResponse {
	items := o.OrderItems()
	resp := OrderResponse{
		OrderID:        o.ID,
		MemberName:     o.Member().Name,
		OrderDate:      o.OrderDate(),
		OrderStatus:    string(o.Status()),
		DeliveryStatus: string(o.Delivery().Status()),
		Address:        NewAddressResponse(o.Delivery().Address),
		TotalPrice:     o.TotalPrice(),
		OrderItems:     make([]OrderItemResponse, len(items)),
	}
	for i, oi := range items {
		resp.OrderItems[i] = OrderItemResponse{
			ItemID:     oi.Item().ID,
			ItemName:   oi.Item().Name,
			OrderPrice: oi.OrderPrice(),
			Count:      oi.Count(),
		}
	}
	return resp
}

// NewOrderListResponse 订单列表
func NewOrderListResponse(orders []*domain.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = NewOrderResponse(o)
	}
	return out
}
