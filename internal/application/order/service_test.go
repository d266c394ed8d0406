package order_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/jpashop/internal/application/item"
	"github.com/xiebiao/jpashop/internal/application/member"
	"github.com/xiebiao/jpashop/internal/application/order"
	"github.com/xiebiao/jpashop/internal/domain"
	"github.com/xiebiao/jpashop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/jpashop/internal/infrastructure/persistence/mysql/mysqltest"
)

type env struct {
	members *member.Service
	items   *item.Service
	orders  *order.Service
	cache   *recordingCache
}

// recordingCache 记录被删除的商品ID
type recordingCache struct {
	item.NopCache
	mu      sync.Mutex
	deleted []uint
}

func (c *recordingCache) Delete(_ context.Context, ids ...uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, ids...)
	return nil
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := mysqltest.NewDB(t)
	tx := mysql.NewTxManager(db)
	memberRepo := mysql.NewMemberRepository(db)
	itemRepo := mysql.NewItemRepository(db)
	orderRepo := mysql.NewOrderRepository(db, mysqltest.Config(100))
	cache := &recordingCache{}

	return &env{
		members: member.NewService(tx, memberRepo),
		items:   item.NewService(tx, itemRepo, nil),
		orders:  order.NewService(tx, memberRepo, itemRepo, orderRepo, cache),
		cache:   cache,
	}
}

// seed 会员USER1和库存10的图书
func (e *env) seed(t *testing.T) (memberID, itemID uint) {
	t.Helper()
	ctx := context.Background()
	memberID, err := e.members.Join(ctx, "USER1", domain.NewAddress("Seoul", "Nowon", "123-123"))
	require.NoError(t, err)
	itemID, err = e.items.SaveBook(ctx, "JPA in Action", 10000, 10, "kim", "978-1")
	require.NoError(t, err)
	return memberID, itemID
}

func (e *env) stock(t *testing.T, itemID uint) int {
	t.Helper()
	it, err := e.items.FindItem(context.Background(), itemID)
	require.NoError(t, err)
	return it.StockQuantity()
}

func TestService_Order(t *testing.T) {
	ctx := context.Background()

	t.Run("下单成功", func(t *testing.T) {
		e := newEnv(t)
		memberID, itemID := e.seed(t)

		orderID, err := e.orders.Order(ctx, memberID, itemID, 2)
		require.NoError(t, err)

		o, err := e.orders.FindOne(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusOrder, o.Status())
		assert.Equal(t, int64(20000), o.TotalPrice())
		require.Len(t, o.OrderItems(), 1)
		assert.Equal(t, int64(10000), o.OrderItems()[0].OrderPrice())
		assert.Equal(t, domain.DeliveryReady, o.Delivery().Status())
		assert.Equal(t, domain.NewAddress("Seoul", "Nowon", "123-123"), o.Delivery().Address)
		assert.Equal(t, "USER1", o.Member().Name)

		assert.Equal(t, 8, e.stock(t, itemID))
		assert.Contains(t, e.cache.deleted, itemID)
	})

	t.Run("库存不足", func(t *testing.T) {
		e := newEnv(t)
		memberID, itemID := e.seed(t)

		_, err := e.orders.Order(ctx, memberID, itemID, 11)
		assert.ErrorIs(t, err, domain.ErrNotEnoughStock)
		assert.Equal(t, 10, e.stock(t, itemID))

		orders, err := e.orders.FindOrders(ctx, domain.OrderSearch{})
		require.NoError(t, err)
		assert.Empty(t, orders, "失败的下单不应留下订单")
	})

	t.Run("会员不存在", func(t *testing.T) {
		e := newEnv(t)
		_, itemID := e.seed(t)

		_, err := e.orders.Order(ctx, 999, itemID, 1)
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})

	t.Run("商品不存在", func(t *testing.T) {
		e := newEnv(t)
		memberID, _ := e.seed(t)

		_, err := e.orders.Order(ctx, memberID, 999, 1)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("数量非法", func(t *testing.T) {
		e := newEnv(t)
		memberID, itemID := e.seed(t)

		_, err := e.orders.Order(ctx, memberID, itemID, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidCount)
		assert.Equal(t, 10, e.stock(t, itemID))
	})

	t.Run("并发下单不超卖", func(t *testing.T) {
		e := newEnv(t)
		memberID, itemID := e.seed(t)

		const n = 12
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			ok       int
			outStock int
		)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := e.orders.Order(ctx, memberID, itemID, 1)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					ok++
				case errors.Is(err, domain.ErrNotEnoughStock):
					outStock++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 10, ok)
		assert.Equal(t, 2, outStock)
		assert.Equal(t, 0, e.stock(t, itemID))
	})
}

func TestService_CancelOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("取消后库存恢复", func(t *testing.T) {
		e := newEnv(t)
		memberID, itemID := e.seed(t)
		orderID, err := e.orders.Order(ctx, memberID, itemID, 2)
		require.NoError(t, err)

		require.NoError(t, e.orders.CancelOrder(ctx, orderID))

		o, err := e.orders.FindOne(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCancel, o.Status())
		assert.Equal(t, 10, e.stock(t, itemID))
	})

	t.Run("重复取消", func(t *testing.T) {
		e := newEnv(t)
		memberID, itemID := e.seed(t)
		orderID, err := e.orders.Order(ctx, memberID, itemID, 2)
		require.NoError(t, err)
		require.NoError(t, e.orders.CancelOrder(ctx, orderID))

		err = e.orders.CancelOrder(ctx, orderID)
		assert.ErrorIs(t, err, domain.ErrAlreadyCanceled)
		assert.Equal(t, 10, e.stock(t, itemID), "库存不能重复归还")
	})

	t.Run("已配送完成不能取消", func(t *testing.T) {
		e := newEnv(t)
		memberID, itemID := e.seed(t)
		orderID, err := e.orders.Order(ctx, memberID, itemID, 2)
		require.NoError(t, err)
		require.NoError(t, e.orders.CompleteDelivery(ctx, orderID))

		err = e.orders.CancelOrder(ctx, orderID)
		assert.ErrorIs(t, err, domain.ErrAlreadyDelivered)

		o, err := e.orders.FindOne(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusOrder, o.Status())
		assert.Equal(t, domain.DeliveryComp, o.Delivery().Status())
		assert.Equal(t, 8, e.stock(t, itemID))
	})

	t.Run("订单不存在", func(t *testing.T) {
		e := newEnv(t)
		err := e.orders.CancelOrder(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestService_CompleteDelivery(t *testing.T) {
	ctx := context.Background()

	t.Run("已取消的订单", func(t *testing.T) {
		e := newEnv(t)
		memberID, itemID := e.seed(t)
		orderID, err := e.orders.Order(ctx, memberID, itemID, 1)
		require.NoError(t, err)
		require.NoError(t, e.orders.CancelOrder(ctx, orderID))

		err = e.orders.CompleteDelivery(ctx, orderID)
		assert.ErrorIs(t, err, domain.ErrAlreadyCanceled)
	})
}

func TestService_FindOrders(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	memberID, itemID := e.seed(t)
	otherID, err := e.members.Join(ctx, "USER2", domain.NewAddress("Busan", "Haeundae", "456-456"))
	require.NoError(t, err)

	first, err := e.orders.Order(ctx, memberID, itemID, 1)
	require.NoError(t, err)
	_, err = e.orders.Order(ctx, otherID, itemID, 1)
	require.NoError(t, err)
	require.NoError(t, e.orders.CancelOrder(ctx, first))

	t.Run("按会员名", func(t *testing.T) {
		orders, err := e.orders.FindOrders(ctx, domain.OrderSearch{MemberName: "USER2"})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "USER2", orders[0].Member().Name)
		assert.True(t, orders[0].ItemsLoaded())
	})

	t.Run("按状态", func(t *testing.T) {
		orders, err := e.orders.FindOrders(ctx, domain.OrderSearch{Status: domain.OrderStatusCancel})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, first, orders[0].ID)
	})

	t.Run("不过滤", func(t *testing.T) {
		orders, err := e.orders.FindOrders(ctx, domain.OrderSearch{})
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})
}
