package domain

import "strings"

// Member 会员实体
// orders是反向引用，仅用于展示，由Order的同步方法维护
type Member struct {
	ID      uint
	Name    string
	Address Address

	orders []*Order
}

// NewMember 创建会员
func NewMember(name string, address Address) (*Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Member{Name: name, Address: address}, nil
}

// RestoreMember 从存储重建会员（仓储专用）
func RestoreMember(id uint, name string, address Address) *Member {
	return &Member{ID: id, Name: name, Address: address}
}

// Rename 修改会员名
func (m *Member) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	m.Name = name
	return nil
}

// Orders 返回当前已关联到该会员的订单（只读副本）
func (m *Member) Orders() []*Order {
	out := make([]*Order, len(m.orders))
	copy(out, m.orders)
	return out
}

func (m *Member) attachOrder(o *Order) {
	for _, existing := range m.orders {
		if existing == o {
			return
		}
	}
	m.orders = append(m.orders, o)
}
