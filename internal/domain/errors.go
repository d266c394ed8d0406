package domain

import (
	"errors"

	apperrors "github.com/xiebiao/jpashop/pkg/errors"
)

// 领域错误定义
// 使用预定义AppError，handler层通过错误码区分类型
var (
	// 资源不存在
	ErrMemberNotFound = apperrors.New(apperrors.ErrCodeMemberNotFound, "会员不存在")
	ErrItemNotFound   = apperrors.New(apperrors.ErrCodeItemNotFound, "商品不存在")
	ErrOrderNotFound  = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// 业务规则
	ErrDuplicateMember  = apperrors.New(apperrors.ErrCodeDuplicateMember, "已存在的会员")
	ErrNotEnoughStock   = apperrors.New(apperrors.ErrCodeNotEnoughStock, "库存不足")
	ErrAlreadyDelivered = apperrors.New(apperrors.ErrCodeInvalidStateTransition, "已配送完成的订单不能取消")
	ErrAlreadyCanceled  = apperrors.New(apperrors.ErrCodeInvalidStateTransition, "订单已取消")

	// 读取策略
	ErrPagingNotSupported = apperrors.New(apperrors.ErrCodePagingNotSupported, "集合抓取连接不支持分页，请使用批量抓取")

	// 参数校验
	ErrInvalidCount = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格不能为负数")
	ErrInvalidStock = apperrors.New(apperrors.ErrCodeInvalidParams, "库存不能为负数")
	ErrEmptyName    = apperrors.New(apperrors.ErrCodeInvalidParams, "名称不能为空")
)

// IsNotFound 是否为资源不存在类错误
func IsNotFound(err error) bool {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeNotFound,
		apperrors.ErrCodeMemberNotFound,
		apperrors.ErrCodeItemNotFound,
		apperrors.ErrCodeOrderNotFound:
		return true
	}
	return false
}

// IsInvalidStateTransition 是否为非法状态转换
func IsInvalidStateTransition(err error) bool {
	return apperrors.IsCode(err, apperrors.ErrCodeInvalidStateTransition)
}

// IsNotEnoughStock 是否为库存不足
func IsNotEnoughStock(err error) bool {
	return errors.Is(err, ErrNotEnoughStock)
}
