package domain

// OrderSearch 订单检索条件
// MemberName按LIKE匹配，Status为空表示不过滤
type OrderSearch struct {
	MemberName string
	Status     OrderStatus
}

// FetchPlan 读取路径显式声明要加载的关联
type FetchPlan int

const (
	// FetchLazy 逐条加载会员、配送、明细：1+3N条查询
	FetchLazy FetchPlan = iota

	// FetchLazyToOne 逐条加载会员、配送，不加载明细：1+2N条查询
	FetchLazyToOne

	// FetchToOne 一次连接查询会员和配送，不加载明细：1条查询
	FetchToOne

	// FetchJoinAll 一次连接查询全部关联，内存去重：1条查询，不支持分页
	FetchJoinAll

	// FetchBatch 连接查询to-one关联，明细按order_id IN批量加载：1+ceil(N/batch)条查询
	FetchBatch
)

func (p FetchPlan) String() string {
	switch p {
	case FetchLazy:
		return "lazy"
	case FetchLazyToOne:
		return "lazy_to_one"
	case FetchToOne:
		return "to_one"
	case FetchJoinAll:
		return "join_all"
	case FetchBatch:
		return "batch"
	default:
		return "unknown"
	}
}

// LoadsItems 该读取路径是否加载订单明细
func (p FetchPlan) LoadsItems() bool {
	return p == FetchLazy || p == FetchJoinAll || p == FetchBatch
}

// FindOptions 查询选项
// Limit<=0表示不分页
type FindOptions struct {
	Fetch  FetchPlan
	Offset int
	Limit  int
}
