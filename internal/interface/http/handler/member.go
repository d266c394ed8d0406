package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/jpashop/internal/application/member"
	"github.com/xiebiao/jpashop/internal/interface/http/dto"
	"github.com/xiebiao/jpashop/pkg/response"
)

// MemberHandler 会员HTTP处理器
// Handler只负责解析请求、调用应用层、返回响应，不包含业务逻辑
type MemberHandler struct {
	members *member.Service
}

// NewMemberHandler 创建会员处理器
func NewMemberHandler(members *member.Service) *MemberHandler {
	return &MemberHandler{members: members}
}

// Join 会员注册
// @Summary      会员注册
// @Description  同名会员已存在时返回40003
// @Tags         会员
// @Accept       json
// @Produce      json
// @Param        request body dto.JoinMemberRequest true "会员信息"
// @Success      200 {object} response.Response{data=dto.IDResponse} "注册成功"
// @Failure      40900 {object} response.Response "参数错误"
// @Failure      40003 {object} response.Response "已存在的会员"
// @Router       /api/v1/members [post]
func (h *MemberHandler) Join(c *gin.Context) {
	var req dto.JoinMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	id, err := h.members.Join(c.Request.Context(), req.Name, req.Address.ToDomain())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.IDResponse{ID: id})
}

// List 会员列表
// @Summary      会员列表
// @Tags         会员
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.MemberResponse}
// @Router       /api/v1/members [get]
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.members.FindMembers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewMemberListResponse(members))
}

// Get 会员详情
// @Summary      会员详情
// @Tags         会员
// @Produce      json
// @Param        id path int true "会员ID"
// @Success      200 {object} response.Response{data=dto.MemberResponse}
// @Failure      40401 {object} response.Response "会员不存在"
// @Router       /api/v1/members/{id} [get]
func (h *MemberHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.members.FindMember(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewMemberResponse(m))
}

// Update 修改会员名称
// @Summary      修改会员名称
// @Tags         会员
// @Accept       json
// @Produce      json
// @Param        id path int true "会员ID"
// @Param        request body dto.UpdateMemberRequest true "新名称"
// @Success      200 {object} response.Response{data=dto.MemberResponse}
// @Failure      40401 {object} response.Response "会员不存在"
// @Router       /api/v1/members/{id} [put]
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.members.Update(ctx, id, req.Name); err != nil {
		response.Error(c, err)
		return
	}
	m, err := h.members.FindMember(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewMemberResponse(m))
}
