package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/jpashop/internal/application/order"
	"github.com/xiebiao/jpashop/internal/interface/http/dto"
	"github.com/xiebiao/jpashop/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	orders *order.Service
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(orders *order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create 下单
// @Summary      下单
// @Description  锁定商品行后扣减库存(SELECT FOR UPDATE)，库存不足返回40001
// @Tags         订单
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateOrderRequest true "下单信息"
// @Success      200 {object} response.Response{data=dto.IDResponse} "下单成功"
// @Failure      40900 {object} response.Response "参数错误"
// @Failure      40401 {object} response.Response "会员不存在"
// @Failure      40402 {object} response.Response "商品不存在"
// @Failure      40001 {object} response.Response "库存不足"
// @Router       /api/v1/orders [post]
//
// 并发测试方法：
// 1. 创建库存为10的图书
// 2. 启动10个并发请求，每个购买5本
// 3. 预期结果：只有2个请求成功，其他8个返回库存不足
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	id, err := h.orders.Order(c.Request.Context(), req.MemberID, req.ItemID, req.Count)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.IDResponse{ID: id})
}

// List 订单检索
// @Summary      订单检索
// @Description  按会员名(模糊匹配)和订单状态检索
// @Tags         订单
// @Produce      json
// @Param        member_name  query string false "会员名"
// @Param        order_status query string false "订单状态" Enums(ORDER, CANCEL)
// @Success      200 {object} response.Response{data=[]dto.OrderResponse}
// @Router       /api/v1/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	orders, err := h.orders.FindOrders(c.Request.Context(), req.ToSearch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewOrderListResponse(orders))
}

// Cancel 取消订单
// @Summary      取消订单
// @Description  已配送完成或已取消的订单返回40002
// @Tags         订单
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=dto.OrderResponse}
// @Failure      40403 {object} response.Response "订单不存在"
// @Failure      40002 {object} response.Response "状态不允许取消"
// @Router       /api/v1/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if err := h.orders.CancelOrder(ctx, id); err != nil {
		response.Error(c, err)
		return
	}
	h.respondOrder(c, id)
}

// CompleteDelivery 配送完成
// @Summary      配送完成
// @Tags         订单
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=dto.OrderResponse}
// @Failure      40403 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id}/complete-delivery [post]
func (h *OrderHandler) CompleteDelivery(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.orders.CompleteDelivery(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	h.respondOrder(c, id)
}

func (h *OrderHandler) respondOrder(c *gin.Context, id uint) {
	o, err := h.orders.FindOne(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewOrderResponse(o))
}
