package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/jpashop/internal/application/orderquery"
	"github.com/xiebiao/jpashop/internal/interface/http/dto"
	"github.com/xiebiao/jpashop/pkg/response"
)

// ReportHandler 订单列表报表
// 每个接口对应一种读取策略，返回内容相同，查询条数不同
type ReportHandler struct {
	query *orderquery.Service
}

// NewReportHandler 创建报表处理器
func NewReportHandler(query *orderquery.Service) *ReportHandler {
	return &ReportHandler{query: query}
}

// OrdersEntityMapping 实体映射
// @Summary      订单列表(逐个加载关联)
// @Description  1+3N条查询
// @Tags         报表
// @Produce      json
// @Success      200 {object} response.Response{data=[]orderquery.OrderDto}
// @Router       /api/v1/reports/orders/entity-mapping [get]
func (h *ReportHandler) OrdersEntityMapping(c *gin.Context) {
	result, err := h.query.OrdersWithEntityMapping(c.Request.Context())
	respond(c, result, err)
}

// OrdersFetchJoin 集合抓取连接
// @Summary      订单列表(一次连接查询)
// @Description  1条查询，不支持分页
// @Tags         报表
// @Produce      json
// @Success      200 {object} response.Response{data=[]orderquery.OrderDto}
// @Router       /api/v1/reports/orders/fetch-join [get]
func (h *ReportHandler) OrdersFetchJoin(c *gin.Context) {
	result, err := h.query.OrdersWithFetchJoin(c.Request.Context())
	respond(c, result, err)
}

// OrdersBatchFetch 批量抓取
// @Summary      订单列表(批量抓取明细)
// @Description  1+ceil(N/batch)条查询，支持分页
// @Tags         报表
// @Produce      json
// @Param        offset query int false "起始位置" default(0)
// @Param        limit  query int false "每页条数" default(100)
// @Success      200 {object} response.Response{data=response.Page[orderquery.OrderDto]}
// @Router       /api/v1/reports/orders/batch-fetch [get]
func (h *ReportHandler) OrdersBatchFetch(c *gin.Context) {
	offset, limit, ok := page(c)
	if !ok {
		return
	}
	result, err := h.query.OrdersWithBatchFetch(c.Request.Context(), offset, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, result, offset, limit)
}

// OrdersDtoQuery 订单投影+逐个查明细
// @Summary      订单列表(投影查询，逐个查明细)
// @Description  1+N条查询
// @Tags         报表
// @Produce      json
// @Success      200 {object} response.Response{data=[]orderquery.OrderQueryDto}
// @Router       /api/v1/reports/orders/dto-query [get]
func (h *ReportHandler) OrdersDtoQuery(c *gin.Context) {
	result, err := h.query.OrdersWithItemQueries(c.Request.Context())
	respond(c, result, err)
}

// OrdersDtoQueryOptimized 订单投影+一条IN查询
// @Summary      订单列表(投影查询，批量查明细)
// @Description  2条查询，支持分页
// @Tags         报表
// @Produce      json
// @Param        offset query int false "起始位置" default(0)
// @Param        limit  query int false "每页条数" default(100)
// @Success      200 {object} response.Response{data=response.Page[orderquery.OrderQueryDto]}
// @Router       /api/v1/reports/orders/dto-query-optimized [get]
func (h *ReportHandler) OrdersDtoQueryOptimized(c *gin.Context) {
	offset, limit, ok := page(c)
	if !ok {
		return
	}
	result, err := h.query.OrdersWithTwoQueries(c.Request.Context(), offset, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, result, offset, limit)
}

// OrdersDtoFlat 扁平查询
// @Summary      订单列表(扁平查询，内存分组)
// @Description  1条查询，不支持分页
// @Tags         报表
// @Produce      json
// @Success      200 {object} response.Response{data=[]orderquery.OrderQueryDto}
// @Router       /api/v1/reports/orders/dto-flat [get]
func (h *ReportHandler) OrdersDtoFlat(c *gin.Context) {
	result, err := h.query.OrdersWithFlatQuery(c.Request.Context())
	respond(c, result, err)
}

// SimpleOrdersEntityMapping 简单订单(逐个加载)
// @Summary      简单订单列表(逐个加载会员和配送)
// @Description  1+2N条查询
// @Tags         报表
// @Produce      json
// @Success      200 {object} response.Response{data=[]orderquery.SimpleOrderDto}
// @Router       /api/v1/reports/simple-orders/entity-mapping [get]
func (h *ReportHandler) SimpleOrdersEntityMapping(c *gin.Context) {
	result, err := h.query.SimpleOrdersWithEntityMapping(c.Request.Context())
	respond(c, result, err)
}

// SimpleOrdersFetchJoin 简单订单(连接查询)
// @Summary      简单订单列表(连接查询)
// @Description  1条查询
// @Tags         报表
// @Produce      json
// @Success      200 {object} response.Response{data=[]orderquery.SimpleOrderDto}
// @Router       /api/v1/reports/simple-orders/fetch-join [get]
func (h *ReportHandler) SimpleOrdersFetchJoin(c *gin.Context) {
	result, err := h.query.SimpleOrdersWithFetchJoin(c.Request.Context())
	respond(c, result, err)
}

// SimpleOrdersDtoQuery 简单订单(投影查询)
// @Summary      简单订单列表(投影查询)
// @Description  1条查询
// @Tags         报表
// @Produce      json
// @Success      200 {object} response.Response{data=[]orderquery.OrderSimpleQueryDto}
// @Router       /api/v1/reports/simple-orders/dto-query [get]
func (h *ReportHandler) SimpleOrdersDtoQuery(c *gin.Context) {
	result, err := h.query.SimpleOrdersWithQuery(c.Request.Context())
	respond(c, result, err)
}

func respond(c *gin.Context, data interface{}, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, data)
}

// page 绑定并归一化分页参数
func page(c *gin.Context) (offset, limit int, ok bool) {
	var req dto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return 0, 0, false
	}
	offset, limit = orderquery.NormalizePage(req.Offset, req.Limit)
	return offset, limit, true
}
