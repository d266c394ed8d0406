package orderquery

// flatKey 扁平行的分组键：所有订单级字段
type flatKey struct {
	OrderID   uint
	Name      string
	OrderDate int64
	Status    string
	Address   AddressDto
}

// GroupFlat 把扁平行重新组装为订单投影
// 按订单级字段分组，结果按键首次出现的顺序输出；OrderItemID为0的行只输出订单
func GroupFlat(flats []OrderFlatDto) []OrderQueryDto {
	index := make(map[flatKey]int)
	result := make([]OrderQueryDto, 0)

	for _, f := range flats {
		// 下单时间按时刻比较，Location不同的同一时刻归为一组
		key := flatKey{
			OrderID:   f.OrderID,
			Name:      f.Name,
			OrderDate: f.OrderDate.UnixNano(),
			Status:    string(f.OrderStatus),
			Address:   f.Address,
		}
		i, ok := index[key]
		if !ok {
			i = len(result)
			index[key] = i
			result = append(result, OrderQueryDto{
				OrderID:     f.OrderID,
				Name:        f.Name,
				OrderDate:   f.OrderDate,
				OrderStatus: f.OrderStatus,
				Address:     f.Address,
				OrderItems:  make([]OrderItemQueryDto, 0),
			})
		}
		// 没有明细的订单只占一行，不产生明细
		if f.OrderItemID == 0 {
			continue
		}
		result[i].OrderItems = append(result[i].OrderItems, OrderItemQueryDto{
			OrderID:    f.OrderID,
			ItemName:   f.ItemName,
			OrderPrice: f.OrderPrice,
			Count:      f.Count,
		})
	}
	return result
}
