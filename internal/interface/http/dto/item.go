package dto

import "github.com/xiebiao/jpashop/internal/domain"

// CreateBookRequest 登记图书请求
// 价格以最小货币单位传递
type CreateBookRequest struct {
	Name          string `json:"name" binding:"required,max=200" example:"JPA in Action"`
	Price         int64  `json:"price" binding:"min=0" example:"10000"`
	StockQuantity int    `json:"stock_quantity" binding:"min=0" example:"10"`
	Author        string `json:"author" binding:"max=100" example:"kim"`
	ISBN          string `json:"isbn" binding:"max=20" example:"9788960777330"`
}

// UpdateItemRequest 修改商品请求
// 只能修改名称、价格、库存
type UpdateItemRequest struct {
	Name          string `json:"name" binding:"required,max=200" example:"JPA in Action 2nd"`
	Price         int64  `json:"price" binding:"min=0" example:"12000"`
	StockQuantity int    `json:"stock_quantity" binding:"min=0" example:"20"`
}

// ItemResponse 商品
// 变体属性按dtype出现
type ItemResponse struct {
	ID            uint   `json:"id" example:"1"`
	DType         string `json:"dtype" example:"B"`
	Name          string `json:"name" example:"JPA in Action"`
	Price         int64  `json:"price" example:"10000"`
	StockQuantity int    `json:"stock_quantity" example:"10"`
	Author        string `json:"author,omitempty" example:"kim"`
	ISBN          string `json:"isbn,omitempty" example:"9788960777330"`
	Artist        string `json:"artist,omitempty"`
	Etc           string `json:"etc,omitempty"`
	Director      string `json:"director,omitempty"`
	Actor         string `json:"actor,omitempty"`
}

// NewItemResponse 从领域实体构建
func NewItemResponse(it *domain.Item) ItemResponse {
	resp := ItemResponse{
		ID:            it.ID,
		DType:         string(it.DType()),
		Name:          it.Name,
		Price:         it.Price,
		StockQuantity: it.StockQuantity(),
	}
	switch d := it.Detail.(type) {
	case domain.Book:
		resp.Author, resp.ISBN = d.Author, d.ISBN
	case domain.Album:
		resp.Artist, resp.Etc = d.Artist, d.Etc
	case domain.Movie:
		resp.Director, resp.Actor = d.Director, d.Actor
	}
	return resp
}

// NewItemListResponse 商品列表
func NewItemListResponse(items []*domain.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = NewItemResponse(it)
	}
	return out
}
