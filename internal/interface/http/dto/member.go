package dto

import "github.com/xiebiao/jpashop/internal/domain"

// AddressRequest 地址
type AddressRequest struct {
	City    string `json:"city" binding:"max=100" example:"Seoul"`
	Street  string `json:"street" binding:"max=200" example:"Nowon"`
	Zipcode string `json:"zipcode" binding:"max=20" example:"123-123"`
}

// ToDomain 转换为领域值对象
func (a AddressRequest) ToDomain() domain.Address {
	return domain.NewAddress(a.City, a.Street, a.Zipcode)
}

// AddressResponse 地址
type AddressResponse struct {
	City    string `json:"city" example:"Seoul"`
	Street  string `json:"street" example:"Nowon"`
	Zipcode string `json:"zipcode" example:"123-123"`
}

// NewAddressResponse 从领域值对象构建
func NewAddressResponse(a domain.Address) AddressResponse {
	return AddressResponse{City: a.City, Street: a.Street, Zipcode: a.Zipcode}
}

// JoinMemberRequest 会员注册请求
type JoinMemberRequest struct {
	Name    string         `json:"name" binding:"required,max=100" example:"USER1"`
	Address AddressRequest `json:"address"`
}

// UpdateMemberRequest 修改会员请求
type UpdateMemberRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"USER2"`
}

// IDResponse 创建类接口返回新ID
type IDResponse struct {
	ID uint `json:"id" example:"1"`
}

// MemberResponse 会员
type MemberResponse struct {
	ID      uint            `json:"id" example:"1"`
	Name    string          `json:"name" example:"USER1"`
	Address AddressResponse `json:"address"`
}

// NewMemberResponse 从领域实体构建
func NewMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{ID: m.ID, Name: m.Name, Address: NewAddressResponse(m.Address)}
}

// NewMemberListResponse 会员列表
func NewMemberListResponse(members []*domain.Member) []MemberResponse {
	out := make([]MemberResponse, len(members))
	for i, m := range members {
		out[i] = NewMemberResponse(m)
	}
	return out
}
