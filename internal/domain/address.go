package domain

// Address 地址值对象
// 值对象按值复制，没有标识，两个字段完全相同的地址即相等
type Address struct {
	City    string
	Street  string
	Zipcode string
}

// NewAddress 创建地址
func NewAddress(city, street, zipcode string) Address {
	return Address{City: city, Street: street, Zipcode: zipcode}
}

// IsZero 是否为空地址
func (a Address) IsZero() bool {
	return a == Address{}
}
