package mysql

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/jpashop/internal/application/orderquery"
	"github.com/xiebiao/jpashop/internal/domain"
	apperrors "github.com/xiebiao/jpashop/pkg/errors"
)

// orderQueryRepository 订单DTO投影查询
// 直接SELECT需要的列，不经过实体
type orderQueryRepository struct {
	db *gorm.DB
}

// NewOrderQueryRepository 创建订单投影查询仓储
func NewOrderQueryRepository(db *gorm.DB) orderquery.QueryRepository {
	return &orderQueryRepository{db: db}
}

// orderRootRow 订单级投影行
type orderRootRow struct {
	OrderID     uint
	Name        string
	OrderDate   time.Time
	OrderStatus string
	City        string
	Street      string
	Zipcode     string
}

func (r orderRootRow) toDto() orderquery.OrderQueryDto {
	return orderquery.OrderQueryDto{
		OrderID:     r.OrderID,
		Name:        r.Name,
		OrderDate:   r.OrderDate,
		OrderStatus: domain.OrderStatus(r.OrderStatus),
		Address:     orderquery.AddressDto{City: r.City, Street: r.Street, Zipcode: r.Zipcode},
		OrderItems:  make([]orderquery.OrderItemQueryDto, 0),
	}
}

const orderRootColumns = "o.id AS order_id, m.name, o.order_date, o.status AS order_status, d.city, d.street, d.zipcode"

// rootQuery 订单 JOIN 会员 JOIN 配送
func rootQuery(db *gorm.DB) *gorm.DB {
	return db.Table("orders o").
		Select(orderRootColumns).
		Joins("JOIN members m ON m.id = o.member_id").
		Joins("JOIN deliveries d ON d.id = o.delivery_id").
		Order("o.id")
}

const orderItemColumns = "oi.order_id, i.name AS item_name, oi.order_price, oi.count"

func itemQuery(db *gorm.DB) *gorm.DB {
	return db.Table("order_items oi").
		Select(orderItemColumns).
		Joins("JOIN items i ON i.id = oi.item_id").
		Order("oi.id")
}

func (r *orderQueryRepository) findRoots(db *gorm.DB, offset, limit int) ([]orderquery.OrderQueryDto, error) {
	q := rootQuery(db)
	if limit > 0 {
		q = q.Offset(max(offset, 0)).Limit(limit)
	}
	var rows []orderRootRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询订单投影失败")
	}
	dtos := make([]orderquery.OrderQueryDto, len(rows))
	for i, row := range rows {
		dtos[i] = row.toDto()
	}
	return dtos, nil
}

// FindOrderQueryDtos 1+N：每个订单单独查一次明细
func (r *orderQueryRepository) FindOrderQueryDtos(ctx context.Context) ([]orderquery.OrderQueryDto, error) {
	db := getDB(ctx, r.db)
	dtos, err := r.findRoots(db, 0, 0)
	if err != nil {
		return nil, err
	}
	for i := range dtos {
		var items []orderquery.OrderItemQueryDto
		if err := itemQuery(db).Where("oi.order_id = ?", dtos[i].OrderID).Scan(&items).Error; err != nil {
			return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询订单明细投影失败")
		}
		if items != nil {
			dtos[i].OrderItems = items
		}
	}
	return dtos, nil
}

// FindAllByDtoOptimization 2条查询：订单投影分页后，用订单ID集合一次取回全部明细
func (r *orderQueryRepository) FindAllByDtoOptimization(ctx context.Context, offset, limit int) ([]orderquery.OrderQueryDto, error) {
	db := getDB(ctx, r.db)
	dtos, err := r.findRoots(db, offset, limit)
	if err != nil || len(dtos) == 0 {
		return dtos, err
	}

	ids := make([]uint, len(dtos))
	for i := range dtos {
		ids[i] = dtos[i].OrderID
	}

	var items []orderquery.OrderItemQueryDto
	if err := itemQuery(db).Where("oi.order_id IN ?", ids).Scan(&items).Error; err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "批量查询订单明细投影失败")
	}

	byOrder := make(map[uint][]orderquery.OrderItemQueryDto, len(dtos))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	for i := range dtos {
		if its, ok := byOrder[dtos[i].OrderID]; ok {
			dtos[i].OrderItems = its
		}
	}
	return dtos, nil
}

// orderFlatRow 扁平投影行
// 没有明细的订单只有一行，明细列为NULL
type orderFlatRow struct {
	OrderID     uint
	Name        string
	OrderDate   time.Time
	OrderStatus string
	City        string
	Street      string
	Zipcode     string
	OrderItemID sql.NullInt64
	ItemName    sql.NullString
	OrderPrice  sql.NullInt64
	Count       sql.NullInt64
}

// FindAllByDtoFlat 一条查询：订单 LEFT JOIN 明细 LEFT JOIN 商品，每个明细一行
func (r *orderQueryRepository) FindAllByDtoFlat(ctx context.Context) ([]orderquery.OrderFlatDto, error) {
	var rows []orderFlatRow
	err := getDB(ctx, r.db).Table("orders o").
		Select(orderRootColumns+", oi.id AS order_item_id, i.name AS item_name, oi.order_price, oi.count").
		Joins("JOIN members m ON m.id = o.member_id").
		Joins("JOIN deliveries d ON d.id = o.delivery_id").
		Joins("LEFT JOIN order_items oi ON oi.order_id = o.id").
		Joins("LEFT JOIN items i ON i.id = oi.item_id").
		Order("o.id").Order("oi.id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "扁平查询订单失败")
	}

	flats := make([]orderquery.OrderFlatDto, len(rows))
	for i, row := range rows {
		flat := orderquery.OrderFlatDto{
			OrderID:     row.OrderID,
			Name:        row.Name,
			OrderDate:   row.OrderDate,
			OrderStatus: domain.OrderStatus(row.OrderStatus),
			Address:     orderquery.AddressDto{City: row.City, Street: row.Street, Zipcode: row.Zipcode},
		}
		if row.OrderItemID.Valid {
			flat.OrderItemID = uint(row.OrderItemID.Int64)
			flat.ItemName = row.ItemName.String
			flat.OrderPrice = row.OrderPrice.Int64
			flat.Count = int(row.Count.Int64)
		}
		flats[i] = flat
	}
	return flats, nil
}

// orderSimpleQueryRepository 仅to-one关联的投影查询
type orderSimpleQueryRepository struct {
	db *gorm.DB
}

// NewOrderSimpleQueryRepository 创建简单订单投影查询仓储
func NewOrderSimpleQueryRepository(db *gorm.DB) orderquery.SimpleQueryRepository {
	return &orderSimpleQueryRepository{db: db}
}

func (r *orderSimpleQueryRepository) FindOrderDtos(ctx context.Context) ([]orderquery.OrderSimpleQueryDto, error) {
	var rows []orderRootRow
	if err := rootQuery(getDB(ctx, r.db)).Scan(&rows).Error; err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询订单投影失败")
	}
	dtos := make([]orderquery.OrderSimpleQueryDto, len(rows))
	for i, row := range rows {
		dtos[i] = orderquery.OrderSimpleQueryDto{
			OrderID:     row.OrderID,
			Name:        row.Name,
			OrderDate:   row.OrderDate,
			OrderStatus: domain.OrderStatus(row.OrderStatus),
			Address:     orderquery.AddressDto{City: row.City, Street: row.Street, Zipcode: row.Zipcode},
		}
	}
	return dtos, nil
}
