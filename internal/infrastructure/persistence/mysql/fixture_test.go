package mysql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/jpashop/internal/domain"
	"github.com/xiebiao/jpashop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/jpashop/internal/infrastructure/persistence/mysql/mysqltest"
)

type fixture struct {
	db      *gorm.DB
	tx      *mysql.TxManager
	members domain.MemberRepository
	items   domain.ItemRepository
	orders  domain.OrderRepository
}

func newFixture(t *testing.T, batchSize int) *fixture {
	t.Helper()
	db := mysqltest.NewDB(t)
	return &fixture{
		db:      db,
		tx:      mysql.NewTxManager(db),
		members: mysql.NewMemberRepository(db),
		items:   mysql.NewItemRepository(db),
		orders:  mysql.NewOrderRepository(db, mysqltest.Config(batchSize)),
	}
}

func (f *fixture) member(t *testing.T, name string) *domain.Member {
	t.Helper()
	m, err := domain.NewMember(name, domain.NewAddress("Seoul", "Nowon", "123-123"))
	require.NoError(t, err)
	require.NoError(t, f.members.Save(context.Background(), m))
	return m
}

func (f *fixture) book(t *testing.T, name string, price int64, stock int) *domain.Item {
	t.Helper()
	it, err := domain.NewBook(name, price, stock, "kim", "isbn-"+name)
	require.NoError(t, err)
	require.NoError(t, f.items.Save(context.Background(), it))
	return it
}

type line struct {
	item  *domain.Item
	count int
}

// order 创建订单并写回库存
func (f *fixture) order(t *testing.T, m *domain.Member, lines ...line) *domain.Order {
	t.Helper()
	ctx := context.Background()
	ois := make([]*domain.OrderItem, len(lines))
	for i, l := range lines {
		oi, err := domain.CreateOrderItem(l.item, l.item.Price, l.count)
		require.NoError(t, err)
		ois[i] = oi
	}
	o := domain.CreateOrder(m, domain.NewDelivery(m.Address), ois...)
	require.NoError(t, f.orders.Save(ctx, o))
	for _, l := range lines {
		require.NoError(t, f.items.UpdateStock(ctx, l.item))
	}
	return o
}

// seedOrders 三个会员各下一单，每单两种商品
func (f *fixture) seedOrders(t *testing.T) []*domain.Order {
	t.Helper()
	jpa1 := f.book(t, "JPA1 BOOK", 10000, 100)
	jpa2 := f.book(t, "JPA2 BOOK", 20000, 100)
	spring1 := f.book(t, "SPRING1 BOOK", 30000, 100)
	spring2 := f.book(t, "SPRING2 BOOK", 40000, 100)

	return []*domain.Order{
		f.order(t, f.member(t, "userA"), line{jpa1, 1}, line{jpa2, 2}),
		f.order(t, f.member(t, "userB"), line{spring1, 3}, line{spring2, 4}),
		f.order(t, f.member(t, "userC"), line{jpa1, 5}, line{spring2, 6}),
	}
}
