package domain

import "strings"

// DType 商品类型鉴别值（单表继承的dtype列）
type DType string

const (
	DTypeBook  DType = "B"
	DTypeAlbum DType = "A"
	DTypeMovie DType = "M"
)

// ItemDetail 商品变体的专有属性
// 封闭接口：只有本包内的Book/Album/Movie可以实现
type ItemDetail interface {
	DType() DType
	sealed()
}

// Book 图书
type Book struct {
	Author string
	ISBN   string
}

// Album 专辑
type Album struct {
	Artist string
	Etc    string
}

// Movie 电影
type Movie struct {
	Director string
	Actor    string
}

func (Book) DType() DType { return DTypeBook }
func (Album) DType() DType { return DTypeAlbum }
func (Movie) DType() DType { return DTypeMovie }

func (Book) sealed() {}
func (Album) sealed() {}
func (Movie) sealed() {}

// Item 商品实体
// 价格以最小货币单位存储(int64)，库存只能通过RemoveStock/AddStock/ChangeInfo修改
type Item struct {
	ID     uint
	Name   string
	Price  int64
	Detail ItemDetail

	stockQuantity int
}

// NewItem 创建商品
func NewItem(name string, price int64, stock int, detail ItemDetail) (*Item, error) {
	it := &Item{Detail: detail}
	if err := it.ChangeInfo(name, price, stock); err != nil {
		return nil, err
	}
	return it, nil
}

// NewBook 创建图书商品
func NewBook(name string, price int64, stock int, author, isbn string) (*Item, error) {
	return NewItem(name, price, stock, Book{Author: author, ISBN: isbn})
}

// RestoreItem 从存储重建商品（仓储专用）
func RestoreItem(id uint, name string, price int64, stock int, detail ItemDetail) *Item {
	return &Item{ID: id, Name: name, Price: price, stockQuantity: stock, Detail: detail}
}

// StockQuantity 当前库存
func (i *Item) StockQuantity() int {
	return i.stockQuantity
}

// DType 商品类型，Detail为空时按图书处理
func (i *Item) DType() DType {
	if i.Detail == nil {
		return DTypeBook
	}
	return i.Detail.DType()
}

// AddStock 增加库存
func (i *Item) AddStock(count int) {
	i.stockQuantity += count
}

// RemoveStock 扣减库存
// 扣减后小于0时返回ErrNotEnoughStock，库存保持不变
func (i *Item) RemoveStock(count int) error {
	if count <= 0 {
		return ErrInvalidCount
	}
	rest := i.stockQuantity - count
	if rest < 0 {
		return ErrNotEnoughStock
	}
	i.stockQuantity = rest
	return nil
}

// ChangeInfo 字段级修改名称、价格、库存
// 变体属性(作者、ISBN等)不受影响
func (i *Item) ChangeInfo(name string, price int64, stock int) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return ErrEmptyName
	case price < 0:
		return ErrInvalidPrice
	case stock < 0:
		return ErrInvalidStock
	}
	i.Name = name
	i.Price = price
	i.stockQuantity = stock
	return nil
}
