package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/jpashop/internal/domain"
	"github.com/xiebiao/jpashop/internal/infrastructure/config"
	apperrors "github.com/xiebiao/jpashop/pkg/errors"
)

// orderRepository 订单仓储实现
// 每个读取方法都按FetchPlan显式决定加载哪些关联，不存在隐式的延迟加载
type orderRepository struct {
	db        *gorm.DB
	batchSize int
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB, cfg *config.Config) domain.OrderRepository {
	return newOrderRepository(db, cfg.Database.BatchFetchSize)
}

func newOrderRepository(db *gorm.DB, batchSize int) *orderRepository {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &orderRepository{db: db, batchSize: batchSize}
}

// Save 级联保存配送、订单、订单明细
// 在同一事务中完成；已处于外层事务时使用SAVEPOINT
func (r *orderRepository) Save(ctx context.Context, o *domain.Order) error {
	items := o.OrderItems()
	delivery := o.Delivery()
	if o.Member() == nil || delivery == nil {
		return apperrors.New(apperrors.ErrCodeInvalidParams, "订单缺少会员或配送信息")
	}

	err := getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		dm := toDeliveryModel(delivery)
		if err := tx.Create(dm).Error; err != nil {
			return err
		}

		om := &OrderModel{
			MemberID:   o.Member().ID,
			DeliveryID: dm.ID,
			OrderDate:  o.OrderDate(),
			Status:     string(o.Status()),
		}
		if err := tx.Omit(clause.Associations).Create(om).Error; err != nil {
			return err
		}

		models := make([]OrderItemModel, len(items))
		for i, it := range items {
			models[i] = OrderItemModel{
				OrderID:    om.ID,
				ItemID:     it.Item().ID,
				OrderPrice: it.OrderPrice(),
				Count:      it.Count(),
			}
		}
		if len(models) > 0 {
			if err := tx.Omit(clause.Associations).Create(&models).Error; err != nil {
				return err
			}
		}

		// 回填自增ID
		delivery.ID = dm.ID
		o.ID = om.ID
		for i, it := range items {
			it.ID = models[i].ID
		}
		return nil
	})
	if err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "保存订单失败")
	}
	return nil
}

// FindOne 加载完整订单图
func (r *orderRepository) FindOne(ctx context.Context, id uint) (*domain.Order, error) {
	return r.findOne(ctx, id, false)
}

// FindOneForUpdate 加载完整订单图并锁定订单、明细、商品行
// 取消订单时防止与并发下单交错修改同一商品库存
func (r *orderRepository) FindOneForUpdate(ctx context.Context, id uint) (*domain.Order, error) {
	return r.findOne(ctx, id, true)
}

func (r *orderRepository) findOne(ctx context.Context, id uint, lock bool) (*domain.Order, error) {
	db := getDB(ctx, r.db)
	if lock {
		// Session使db可复用，后续两条查询都带FOR UPDATE
		db = db.Clauses(clause.Locking{Strength: "UPDATE"}).Session(&gorm.Session{})
	}

	var model OrderModel
	err := db.Joins("Member").Joins("Delivery").Where("orders.id = ?", id).Take(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询订单失败")
	}

	var itemModels []OrderItemModel
	if err := db.Joins("Item").Where("order_items.order_id = ?", id).Order("order_items.id").Find(&itemModels).Error; err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询订单明细失败")
	}

	l := newLoader()
	return l.order(&model, l.member(&model.Member), toDeliveryEntity(&model.Delivery), l.orderItems(itemModels)), nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, o *domain.Order) error {
	result := getDB(ctx, r.db).Model(&OrderModel{}).Where("id = ?", o.ID).Update("status", string(o.Status()))
	if result.Error != nil {
		return apperrors.WrapCode(result.Error, apperrors.ErrCodeDatabaseError, "更新订单状态失败")
	}
	return nil
}

func (r *orderRepository) UpdateDeliveryStatus(ctx context.Context, d *domain.Delivery) error {
	result := getDB(ctx, r.db).Model(&DeliveryModel{}).Where("id = ?", d.ID).Update("status", string(d.Status()))
	if result.Error != nil {
		return apperrors.WrapCode(result.Error, apperrors.ErrCodeDatabaseError, "更新配送状态失败")
	}
	return nil
}

// FindAll 按检索条件查询订单
// 结果按订单ID升序；opts.Limit>0时才分页，FetchJoinAll给出Limit或Offset都返回ErrPagingNotSupported
func (r *orderRepository) FindAll(ctx context.Context, search domain.OrderSearch, opts domain.FindOptions) ([]*domain.Order, error) {
	db := getDB(ctx, r.db)
	switch opts.Fetch {
	case domain.FetchLazy:
		return r.findLazy(db, search, opts, true)
	case domain.FetchLazyToOne:
		return r.findLazy(db, search, opts, false)
	case domain.FetchToOne:
		return r.findToOne(db, search, opts)
	case domain.FetchJoinAll:
		if opts.Limit > 0 || opts.Offset > 0 {
			return nil, domain.ErrPagingNotSupported
		}
		return r.findJoinAll(db, search)
	case domain.FetchBatch:
		return r.findBatch(db, search, opts)
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "未知的抓取策略")
	}
}

// findLazy 先查订单，再逐条查关联：1+2N或1+3N条查询
func (r *orderRepository) findLazy(db *gorm.DB, search domain.OrderSearch, opts domain.FindOptions, withItems bool) ([]*domain.Order, error) {
	var models []OrderModel
	if err := applyPaging(applySearch(db.Model(&OrderModel{}), search).Order("orders.id"), opts).Find(&models).Error; err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询订单列表失败")
	}

	l := newLoader()
	orders := make([]*domain.Order, 0, len(models))
	for i := range models {
		m := &models[i]

		var mm MemberModel
		if err := db.First(&mm, m.MemberID).Error; err != nil {
			return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询订单会员失败")
		}
		var dm DeliveryModel
		if err := db.First(&dm, m.DeliveryID).Error; err != nil {
			return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询订单配送失败")
		}

		var items []*domain.OrderItem
		if withItems {
			var itemModels []OrderItemModel
			if err := db.Joins("Item").Where("order_items.order_id = ?", m.ID).Order("order_items.id").Find(&itemModels).Error; err != nil {
				return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询订单明细失败")
			}
			items = l.orderItems(itemModels)
		}

		orders = append(orders, l.order(m, l.member(&mm), toDeliveryEntity(&dm), items))
	}
	return orders, nil
}

// findToOne 一条连接查询加载会员和配送
func (r *orderRepository) findToOne(db *gorm.DB, search domain.OrderSearch, opts domain.FindOptions) ([]*domain.Order, error) {
	models, err := r.queryToOne(db, search, opts)
	if err != nil {
		return nil, err
	}
	l := newLoader()
	orders := make([]*domain.Order, len(models))
	for i := range models {
		m := &models[i]
		orders[i] = l.order(m, l.member(&m.Member), toDeliveryEntity(&m.Delivery), nil)
	}
	return orders, nil
}

func (r *orderRepository) queryToOne(db *gorm.DB, search domain.OrderSearch, opts domain.FindOptions) ([]OrderModel, error) {
	var models []OrderModel
	q := db.Model(&OrderModel{}).Joins("Member").Joins("Delivery")
	if err := applyPaging(applySearch(q, search).Order("orders.id"), opts).Find(&models).Error; err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询订单列表失败")
	}
	return models, nil
}

// findBatch to-one连接查询(可分页) + 明细按order_id IN分批加载
func (r *orderRepository) findBatch(db *gorm.DB, search domain.OrderSearch, opts domain.FindOptions) ([]*domain.Order, error) {
	models, err := r.queryToOne(db, search, opts)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(models))
	for i := range models {
		ids[i] = models[i].ID
	}

	byOrder := make(map[uint][]OrderItemModel, len(ids))
	for start := 0; start < len(ids); start += r.batchSize {
		end := min(start+r.batchSize, len(ids))
		var chunk []OrderItemModel
		err := db.Joins("Item").
			Where("order_items.order_id IN ?", ids[start:end]).
			Order("order_items.id").
			Find(&chunk).Error
		if err != nil {
			return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "批量查询订单明细失败")
		}
		for _, it := range chunk {
			byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
		}
	}

	l := newLoader()
	orders := make([]*domain.Order, len(models))
	for i := range models {
		m := &models[i]
		orders[i] = l.order(m, l.member(&m.Member), toDeliveryEntity(&m.Delivery), l.orderItems(byOrder[m.ID]))
	}
	return orders, nil
}

// joinAllRow 全连接查询的一行：一个(订单, 明细)组合
type joinAllRow struct {
	OrderID    uint
	OrderDate  time.Time
	Status     string
	MemberID   uint
	MemberName string
	MCity      string
	MStreet    string
	MZipcode   string
	DeliveryID uint
	DCity      string
	DStreet    string
	DZipcode   string
	DStatus    string

	OrderItemID   sql.NullInt64
	OrderPrice    sql.NullInt64
	Count         sql.NullInt64
	ItemID        sql.NullInt64
	DType         sql.NullString
	ItemName      sql.NullString
	Price         sql.NullInt64
	StockQuantity sql.NullInt64
	Author        sql.NullString
	ISBN          sql.NullString
	Artist        sql.NullString
	Etc           sql.NullString
	Director      sql.NullString
	Actor         sql.NullString
}

// findJoinAll 一条SQL连接订单、会员、配送、明细、商品
// 每个明细产生一行，订单在内存中按ID去重；行数随明细膨胀，因此不能在SQL层分页
func (r *orderRepository) findJoinAll(db *gorm.DB, search domain.OrderSearch) ([]*domain.Order, error) {
	var rows []joinAllRow
	err := applySearch(db.Table("orders"), search).
		Select(`orders.id AS order_id, orders.order_date, orders.status,
			m.id AS member_id, m.name AS member_name, m.city AS m_city, m.street AS m_street, m.zipcode AS m_zipcode,
			d.id AS delivery_id, d.city AS d_city, d.street AS d_street, d.zipcode AS d_zipcode, d.status AS d_status,
			oi.id AS order_item_id, oi.order_price, oi.count,
			i.id AS item_id, i.dtype AS d_type, i.name AS item_name, i.price, i.stock_quantity,
			i.author, i.isbn, i.artist, i.etc, i.director, i.actor`).
		Joins("JOIN members m ON m.id = orders.member_id").
		Joins("JOIN deliveries d ON d.id = orders.delivery_id").
		Joins("LEFT JOIN order_items oi ON oi.order_id = orders.id").
		Joins("LEFT JOIN items i ON i.id = oi.item_id").
		Order("orders.id").Order("oi.id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "连接查询订单失败")
	}

	l := newLoader()
	var (
		orders []*domain.Order
		seen   = make(map[uint]int)
		parts  []joinAllGroup
	)
	for i := range rows {
		row := &rows[i]
		idx, ok := seen[row.OrderID]
		if !ok {
			idx = len(parts)
			seen[row.OrderID] = idx
			parts = append(parts, joinAllGroup{head: row, items: []*domain.OrderItem{}})
		}
		if row.OrderItemID.Valid {
			item := l.item(&ItemModel{
				ID:            uint(row.ItemID.Int64),
				DType:         row.DType.String,
				Name:          row.ItemName.String,
				Price:         row.Price.Int64,
				StockQuantity: int(row.StockQuantity.Int64),
				Author:        row.Author.String,
				ISBN:          row.ISBN.String,
				Artist:        row.Artist.String,
				Etc:           row.Etc.String,
				Director:      row.Director.String,
				Actor:         row.Actor.String,
			})
			parts[idx].items = append(parts[idx].items,
				domain.RestoreOrderItem(uint(row.OrderItemID.Int64), item, row.OrderPrice.Int64, int(row.Count.Int64)))
		}
	}

	for _, p := range parts {
		h := p.head
		member := l.member(&MemberModel{ID: h.MemberID, Name: h.MemberName, City: h.MCity, Street: h.MStreet, Zipcode: h.MZipcode})
		delivery := domain.RestoreDelivery(h.DeliveryID, domain.NewAddress(h.DCity, h.DStreet, h.DZipcode), domain.DeliveryStatus(h.DStatus))
		orders = append(orders, domain.RestoreOrder(h.OrderID, member, delivery, p.items, h.OrderDate, domain.OrderStatus(h.Status)))
	}
	return orders, nil
}

type joinAllGroup struct {
	head  *joinAllRow
	items []*domain.OrderItem
}

// applySearch 追加检索条件
// 会员名用子查询做包含匹配，不依赖调用方是否连接了members表；名称中的%和_按字面匹配
func applySearch(db *gorm.DB, search domain.OrderSearch) *gorm.DB {
	if search.Status != "" {
		db = db.Where("orders.status = ?", string(search.Status))
	}
	if search.MemberName != "" {
		db = db.Where("orders.member_id IN (SELECT id FROM members WHERE name LIKE ? ESCAPE '!')", "%"+escapeLike(search.MemberName)+"%")
	}
	return db
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// escapeLike 转义LIKE通配符，配合ESCAPE '!'使用
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func applyPaging(db *gorm.DB, opts domain.FindOptions) *gorm.DB {
	if opts.Limit <= 0 {
		return db
	}
	return db.Offset(max(opts.Offset, 0)).Limit(opts.Limit)
}

// =========================================
// 辅助函数:模型转换
// =========================================

// loader 单次读取内的标识映射
// 同一ID的会员、商品只重建一次，多条明细引用同一商品时共享同一个实体，
// 取消订单归还库存时才不会互相覆盖
type loader struct {
	members map[uint]*domain.Member
	items   map[uint]*domain.Item
}

func newLoader() *loader {
	return &loader{
		members: make(map[uint]*domain.Member),
		items:   make(map[uint]*domain.Item),
	}
}

func (l *loader) member(model *MemberModel) *domain.Member {
	if m, ok := l.members[model.ID]; ok {
		return m
	}
	m := toMemberEntity(model)
	l.members[model.ID] = m
	return m
}

func (l *loader) item(model *ItemModel) *domain.Item {
	if it, ok := l.items[model.ID]; ok {
		return it
	}
	it := toItemEntity(model)
	l.items[model.ID] = it
	return it
}

// orderItems 转换明细；返回非nil切片表示明细已加载
func (l *loader) orderItems(models []OrderItemModel) []*domain.OrderItem {
	items := make([]*domain.OrderItem, len(models))
	for i := range models {
		m := &models[i]
		items[i] = domain.RestoreOrderItem(m.ID, l.item(&m.Item), m.OrderPrice, m.Count)
	}
	return items
}

func (l *loader) order(model *OrderModel, member *domain.Member, delivery *domain.Delivery, items []*domain.OrderItem) *domain.Order {
	return domain.RestoreOrder(model.ID, member, delivery, items, model.OrderDate, domain.OrderStatus(model.Status))
}

func toDeliveryModel(d *domain.Delivery) *DeliveryModel {
	return &DeliveryModel{
		ID:      d.ID,
		City:    d.Address.City,
		Street:  d.Address.Street,
		Zipcode: d.Address.Zipcode,
		Status:  string(d.Status()),
	}
}

func toDeliveryEntity(model *DeliveryModel) *domain.Delivery {
	return domain.RestoreDelivery(model.ID, domain.NewAddress(model.City, model.Street, model.Zipcode), domain.DeliveryStatus(model.Status))
}
