package mysql

import "time"

// 这里是infrastructure层的数据模型，包含GORM tag
// domain层实体不依赖GORM，Repository负责两者之间的转换

// MemberModel 会员表
// name加唯一索引，防止并发注册同名会员
type MemberModel struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"uniqueIndex;size:100;not null;comment:会员名"`
	City    string `gorm:"size:100;comment:城市"`
	Street  string `gorm:"size:200;comment:街道"`
	Zipcode string `gorm:"size:20;comment:邮编"`
}

func (MemberModel) TableName() string {
	return "members"
}

// ItemModel 商品表（单表继承）
// dtype区分B/A/M，各变体的专有列允许为空
type ItemModel struct {
	ID            uint   `gorm:"primaryKey"`
	DType         string `gorm:"column:dtype;size:1;index;not null;comment:商品类型"`
	Name          string `gorm:"size:200;not null;comment:商品名"`
	Price         int64  `gorm:"not null;comment:价格(最小货币单位)"`
	StockQuantity int    `gorm:"not null;default:0;comment:库存数量"`

	Author string `gorm:"size:100;comment:作者(图书)"`
	ISBN   string `gorm:"column:isbn;size:20;comment:ISBN(图书)"`

	Artist string `gorm:"size:100;comment:艺术家(专辑)"`
	Etc    string `gorm:"size:200;comment:其他(专辑)"`

	Director string `gorm:"size:100;comment:导演(电影)"`
	Actor    string `gorm:"size:100;comment:演员(电影)"`
}

func (ItemModel) TableName() string {
	return "items"
}

// DeliveryModel 配送表
type DeliveryModel struct {
	ID      uint   `gorm:"primaryKey"`
	City    string `gorm:"size:100"`
	Street  string `gorm:"size:200"`
	Zipcode string `gorm:"size:20"`
	Status  string `gorm:"size:10;not null;default:READY;comment:配送状态(READY/COMP)"`
}

func (DeliveryModel) TableName() string {
	return "deliveries"
}

// OrderModel 订单表
// Member/Delivery是belongs-to关联，仅在连接查询时填充
type OrderModel struct {
	ID         uint      `gorm:"primaryKey"`
	MemberID   uint      `gorm:"index;not null;comment:会员ID"`
	DeliveryID uint      `gorm:"uniqueIndex;not null;comment:配送ID"`
	OrderDate  time.Time `gorm:"precision:6;index;not null;comment:下单时间"`
	Status     string    `gorm:"size:10;index;not null;comment:订单状态(ORDER/CANCEL)"`

	Member   MemberModel   `gorm:"foreignKey:MemberID"`
	Delivery DeliveryModel `gorm:"foreignKey:DeliveryID"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel 订单明细表
// OrderPrice记录下单时的价格快照
type OrderItemModel struct {
	ID         uint  `gorm:"primaryKey"`
	OrderID    uint  `gorm:"index;not null;comment:订单ID"`
	ItemID     uint  `gorm:"index;not null;comment:商品ID"`
	OrderPrice int64 `gorm:"not null;comment:下单时单价"`
	Count      int   `gorm:"not null;comment:购买数量"`

	Item ItemModel `gorm:"foreignKey:ItemID"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
