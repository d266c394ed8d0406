package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/jpashop/internal/application/item"
	"github.com/xiebiao/jpashop/internal/interface/http/dto"
	"github.com/xiebiao/jpashop/pkg/response"
)

// ItemHandler 商品HTTP处理器
type ItemHandler struct {
	items *item.Service
}

// NewItemHandler 创建商品处理器
func NewItemHandler(items *item.Service) *ItemHandler {
	return &ItemHandler{items: items}
}

// CreateBook 登记图书
// @Summary      登记图书
// @Tags         商品
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.IDResponse} "登记成功"
// @Failure      40900 {object} response.Response "参数错误"
// @Router       /api/v1/items [post]
func (h *ItemHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	id, err := h.items.SaveBook(c.Request.Context(), req.Name, req.Price, req.StockQuantity, req.Author, req.ISBN)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.IDResponse{ID: id})
}

// List 商品列表
// @Summary      商品列表
// @Tags         商品
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.ItemResponse}
// @Router       /api/v1/items [get]
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.items.FindItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewItemListResponse(items))
}

// Get 商品详情
// @Summary      商品详情
// @Description  启用Redis时走缓存
// @Tags         商品
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response{data=dto.ItemResponse}
// @Failure      40402 {object} response.Response "商品不存在"
// @Router       /api/v1/items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	it, err := h.items.FindItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewItemResponse(it))
}

// Update 修改商品
// @Summary      修改商品
// @Description  只修改名称、价格、库存，作者和ISBN保持不变
// @Tags         商品
// @Accept       json
// @Produce      json
// @Param        id path int true "商品ID"
// @Param        request body dto.UpdateItemRequest true "商品信息"
// @Success      200 {object} response.Response{data=dto.ItemResponse}
// @Failure      40402 {object} response.Response "商品不存在"
// @Router       /api/v1/items/{id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.items.UpdateItem(ctx, id, req.Name, req.Price, req.StockQuantity); err != nil {
		response.Error(c, err)
		return
	}
	it, err := h.items.FindItem(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewItemResponse(it))
}
