package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/jpashop/internal/domain"
	apperrors "github.com/xiebiao/jpashop/pkg/errors"
)

// itemRepository 商品仓储实现（单表继承，dtype区分变体）
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository 创建商品仓储
func NewItemRepository(db *gorm.DB) domain.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Save(ctx context.Context, it *domain.Item) error {
	model := toItemModel(it)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "保存商品失败")
	}
	it.ID = model.ID
	return nil
}

func (r *itemRepository) FindOne(ctx context.Context, id uint) (*domain.Item, error) {
	return r.findOne(getDB(ctx, r.db), id)
}

// FindOneForUpdate 悲观锁查询商品
// SELECT ... FOR UPDATE锁定行，并发下单同一商品时串行化库存扣减
// 必须使用getDB(ctx)从context获取事务DB，否则锁在语句结束时就释放了
func (r *itemRepository) FindOneForUpdate(ctx context.Context, id uint) (*domain.Item, error) {
	return r.findOne(getDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *itemRepository) findOne(db *gorm.DB, id uint) (*domain.Item, error) {
	var model ItemModel
	if err := db.First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, domain.ErrItemNotFound
		}
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询商品失败")
	}
	return toItemEntity(&model), nil
}

func (r *itemRepository) FindAll(ctx context.Context) ([]*domain.Item, error) {
	var models []ItemModel
	if err := getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询商品列表失败")
	}
	items := make([]*domain.Item, len(models))
	for i := range models {
		items[i] = toItemEntity(&models[i])
	}
	return items, nil
}

// Update 字段级更新
// 只写name/price/stock_quantity三列，不使用Save整行覆盖(避免把未设置的变体字段写空)
func (r *itemRepository) Update(ctx context.Context, it *domain.Item) error {
	result := getDB(ctx, r.db).Model(&ItemModel{}).Where("id = ?", it.ID).Updates(map[string]interface{}{
		"name":           it.Name,
		"price":          it.Price,
		"stock_quantity": it.StockQuantity(),
	})
	if result.Error != nil {
		return apperrors.WrapCode(result.Error, apperrors.ErrCodeDatabaseError, "更新商品失败")
	}
	return nil
}

// UpdateStock 写回库存
// 库存变化已经由domain的RemoveStock/AddStock在锁定的行上计算完成
func (r *itemRepository) UpdateStock(ctx context.Context, it *domain.Item) error {
	result := getDB(ctx, r.db).Model(&ItemModel{}).
		Where("id = ?", it.ID).
		Update("stock_quantity", it.StockQuantity())
	if result.Error != nil {
		return apperrors.WrapCode(result.Error, apperrors.ErrCodeDatabaseError, "更新库存失败")
	}
	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toItemModel(it *domain.Item) *ItemModel {
	model := &ItemModel{
		ID:            it.ID,
		DType:         string(it.DType()),
		Name:          it.Name,
		Price:         it.Price,
		StockQuantity: it.StockQuantity(),
	}
	switch d := it.Detail.(type) {
	case domain.Book:
		model.Author, model.ISBN = d.Author, d.ISBN
	case domain.Album:
		model.Artist, model.Etc = d.Artist, d.Etc
	case domain.Movie:
		model.Director, model.Actor = d.Director, d.Actor
	}
	return model
}

func toItemEntity(model *ItemModel) *domain.Item {
	var detail domain.ItemDetail
	switch domain.DType(model.DType) {
	case domain.DTypeAlbum:
		detail = domain.Album{Artist: model.Artist, Etc: model.Etc}
	case domain.DTypeMovie:
		detail = domain.Movie{Director: model.Director, Actor: model.Actor}
	default:
		detail = domain.Book{Author: model.Author, ISBN: model.ISBN}
	}
	return domain.RestoreItem(model.ID, model.Name, model.Price, model.StockQuantity, detail)
}
