package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMember(t *testing.T) *Member {
	t.Helper()
	m, err := NewMember("USER1", NewAddress("Seoul", "Nowon", "123-123"))
	require.NoError(t, err)
	return m
}

func newTestBook(t *testing.T, price int64, stock int) *Item {
	t.Helper()
	it, err := NewBook("JPA in Action", price, stock, "kim", "1234")
	require.NoError(t, err)
	return it
}

func TestCreateOrderItem(t *testing.T) {
	t.Run("创建明细同时扣减库存", func(t *testing.T) {
		book := newTestBook(t, 10000, 10)
		oi, err := CreateOrderItem(book, book.Price, 2)
		require.NoError(t, err)

		assert.Equal(t, 8, book.StockQuantity())
		assert.Equal(t, int64(20000), oi.TotalPrice())
		assert.Same(t, book, oi.Item())
	})

	t.Run("库存不足不创建明细", func(t *testing.T) {
		book := newTestBook(t, 10000, 10)
		oi, err := CreateOrderItem(book, book.Price, 11)
		assert.ErrorIs(t, err, ErrNotEnoughStock)
		assert.Nil(t, oi)
		assert.Equal(t, 10, book.StockQuantity())
	})

	t.Run("下单价格与商品当前价格解耦", func(t *testing.T) {
		book := newTestBook(t, 10000, 10)
		oi, err := CreateOrderItem(book, 9000, 1)
		require.NoError(t, err)

		require.NoError(t, book.ChangeInfo(book.Name, 50000, book.StockQuantity()))
		assert.Equal(t, int64(9000), oi.OrderPrice())
	})
}

func TestCreateOrder(t *testing.T) {
	member := newTestMember(t)
	book := newTestBook(t, 10000, 10)
	delivery := NewDelivery(member.Address)
	oi, err := CreateOrderItem(book, book.Price, 2)
	require.NoError(t, err)

	order := CreateOrder(member, delivery, oi)

	assert.Equal(t, OrderStatusOrder, order.Status())
	assert.Equal(t, int64(20000), order.TotalPrice())
	assert.False(t, order.OrderDate().IsZero())
	assert.True(t, order.ItemsLoaded())

	// 双向关联一致
	assert.Same(t, order, delivery.Order())
	assert.Same(t, order, oi.Order())
	assert.Equal(t, []*Order{order}, member.Orders())
	assert.Equal(t, DeliveryReady, delivery.Status())
	assert.Equal(t, member.Address, delivery.Address)
}

func TestOrder_TotalPrice(t *testing.T) {
	member := newTestMember(t)
	b1 := newTestBook(t, 10000, 10)
	b2 := newTestBook(t, 20000, 10)
	oi1, _ := CreateOrderItem(b1, b1.Price, 1)
	oi2, _ := CreateOrderItem(b2, b2.Price, 3)

	order := CreateOrder(member, NewDelivery(member.Address), oi1, oi2)
	assert.Equal(t, int64(70000), order.TotalPrice())
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("取消后归还库存", func(t *testing.T) {
		member := newTestMember(t)
		book := newTestBook(t, 10000, 10)
		oi, _ := CreateOrderItem(book, book.Price, 2)
		order := CreateOrder(member, NewDelivery(member.Address), oi)
		require.Equal(t, 8, book.StockQuantity())

		require.NoError(t, order.Cancel())
		assert.Equal(t, OrderStatusCancel, order.Status())
		assert.Equal(t, 10, book.StockQuantity())
	})

	t.Run("配送完成不能取消", func(t *testing.T) {
		member := newTestMember(t)
		book := newTestBook(t, 10000, 10)
		oi, _ := CreateOrderItem(book, book.Price, 2)
		delivery := NewDelivery(member.Address)
		order := CreateOrder(member, delivery, oi)
		delivery.Complete()

		err := order.Cancel()
		assert.ErrorIs(t, err, ErrAlreadyDelivered)
		assert.True(t, IsInvalidStateTransition(err))
		assert.Equal(t, OrderStatusOrder, order.Status())
		assert.Equal(t, 8, book.StockQuantity())
	})

	t.Run("重复取消返回错误且库存不变", func(t *testing.T) {
		member := newTestMember(t)
		book := newTestBook(t, 10000, 10)
		oi, _ := CreateOrderItem(book, book.Price, 2)
		order := CreateOrder(member, NewDelivery(member.Address), oi)

		require.NoError(t, order.Cancel())
		err := order.Cancel()
		assert.ErrorIs(t, err, ErrAlreadyCanceled)
		assert.True(t, IsInvalidStateTransition(err))
		assert.Equal(t, 10, book.StockQuantity())
	})

	t.Run("多个明细全部归还", func(t *testing.T) {
		member := newTestMember(t)
		b1 := newTestBook(t, 10000, 5)
		b2 := newTestBook(t, 20000, 5)
		oi1, _ := CreateOrderItem(b1, b1.Price, 1)
		oi2, _ := CreateOrderItem(b2, b2.Price, 4)
		order := CreateOrder(member, NewDelivery(member.Address), oi1, oi2)

		require.NoError(t, order.Cancel())
		assert.Equal(t, 5, b1.StockQuantity())
		assert.Equal(t, 5, b2.StockQuantity())
	})
}

func TestRestoreOrder(t *testing.T) {
	member := RestoreMember(1, "USER1", NewAddress("Seoul", "Nowon", "123-123"))

	t.Run("未加载明细", func(t *testing.T) {
		o := RestoreOrder(1, member, nil, nil, now(), OrderStatusOrder)
		assert.False(t, o.ItemsLoaded())
		assert.Nil(t, o.Delivery())
		assert.Empty(t, o.OrderItems())
	})

	t.Run("已加载空明细", func(t *testing.T) {
		o := RestoreOrder(2, member, nil, []*OrderItem{}, now(), OrderStatusOrder)
		assert.True(t, o.ItemsLoaded())
	})

	t.Run("重建不触碰库存", func(t *testing.T) {
		book := RestoreItem(1, "JPA in Action", 10000, 8, Book{})
		oi := RestoreOrderItem(1, book, 10000, 2)
		o := RestoreOrder(3, member, RestoreDelivery(1, member.Address, DeliveryReady), []*OrderItem{oi}, now(), OrderStatusOrder)
		assert.Equal(t, 8, book.StockQuantity())
		assert.Same(t, o, oi.Order())
		assert.Equal(t, int64(20000), o.TotalPrice())
	})
}

func TestMember(t *testing.T) {
	_, err := NewMember("  ", Address{})
	assert.ErrorIs(t, err, ErrEmptyName)

	m := newTestMember(t)
	require.NoError(t, m.Rename("USER2"))
	assert.Equal(t, "USER2", m.Name)
	assert.ErrorIs(t, m.Rename(""), ErrEmptyName)
	assert.Equal(t, "USER2", m.Name)
}
