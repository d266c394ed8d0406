package orderquery

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/jpashop/internal/domain"
)

func TestGroupFlat(t *testing.T) {
	date := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	seoul := AddressDto{City: "Seoul", Street: "Nowon", Zipcode: "123-123"}

	var nextItemID uint
	flat := func(id uint, name, item string, price int64, count int) OrderFlatDto {
		nextItemID++
		return OrderFlatDto{
			OrderID: id, Name: name, OrderDate: date, OrderStatus: domain.OrderStatusOrder, Address: seoul,
			OrderItemID: nextItemID, ItemName: item, OrderPrice: price, Count: count,
		}
	}

	t.Run("按订单分组并保持首次出现顺序", func(t *testing.T) {
		got := GroupFlat([]OrderFlatDto{
			flat(2, "userB", "SPRING1", 30000, 3),
			flat(1, "userA", "JPA1", 10000, 1),
			flat(2, "userB", "SPRING2", 40000, 4),
			flat(1, "userA", "JPA2", 20000, 2),
		})

		require.Len(t, got, 2)
		assert.Equal(t, uint(2), got[0].OrderID)
		assert.Equal(t, uint(1), got[1].OrderID)
		assert.Equal(t, []OrderItemQueryDto{
			{OrderID: 2, ItemName: "SPRING1", OrderPrice: 30000, Count: 3},
			{OrderID: 2, ItemName: "SPRING2", OrderPrice: 40000, Count: 4},
		}, got[0].OrderItems)
		assert.Equal(t, "JPA2", got[1].OrderItems[1].ItemName)
	})

	t.Run("同一时刻不同时区归为一组", func(t *testing.T) {
		a := flat(1, "userA", "JPA1", 10000, 1)
		b := flat(1, "userA", "JPA2", 20000, 2)
		b.OrderDate = date.In(time.FixedZone("KST", 9*3600))

		got := GroupFlat([]OrderFlatDto{a, b})
		require.Len(t, got, 1)
		assert.Len(t, got[0].OrderItems, 2)
	})

	t.Run("没有明细的订单", func(t *testing.T) {
		empty := OrderFlatDto{OrderID: 3, Name: "userD", OrderDate: date, OrderStatus: domain.OrderStatusOrder, Address: seoul}
		got := GroupFlat([]OrderFlatDto{flat(1, "userA", "JPA1", 10000, 1), empty})

		require.Len(t, got, 2)
		assert.Equal(t, uint(3), got[1].OrderID)
		assert.NotNil(t, got[1].OrderItems)
		assert.Empty(t, got[1].OrderItems)
	})

	t.Run("空输入", func(t *testing.T) {
		got := GroupFlat(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name                  string
		offset, limit         int
		wantOffset, wantLimit int
	}{
		{"默认值", 0, 0, 0, DefaultLimit},
		{"负数offset", -5, 10, 0, 10},
		{"超过上限", 10, 5000, 10, MaxLimit},
		{"正常值", 1, 100, 1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := NormalizePage(tt.offset, tt.limit)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestOrderFlatDto_JSON(t *testing.T) {
	t.Run("有明细", func(t *testing.T) {
		b, err := json.Marshal(OrderFlatDto{OrderID: 1, Name: "userA", OrderItemID: 7, ItemName: "JPA1 BOOK", OrderPrice: 10000, Count: 1})
		require.NoError(t, err)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(b, &got))
		for _, key := range []string{"order_id", "name", "order_date", "order_status", "address", "order_item_id", "item_name", "order_price", "count"} {
			assert.Contains(t, got, key)
		}
	})

	t.Run("没有明细时省略明细字段", func(t *testing.T) {
		b, err := json.Marshal(OrderFlatDto{OrderID: 1, Name: "userD"})
		require.NoError(t, err)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Contains(t, got, "order_id")
		assert.NotContains(t, got, "order_item_id")
		assert.NotContains(t, got, "item_name")
	})
}
