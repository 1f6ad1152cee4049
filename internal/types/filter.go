package types

const (
	FilterDefaultLimit = 50
	FilterMaxLimit     = 200
)

// BaseFilter carries common pagination options for list queries
type BaseFilter struct {
	Limit  int `form:"limit" json:"limit"`
	Offset int `form:"offset" json:"offset"`
}

func (f BaseFilter) GetLimit() int {
	if f.Limit <= 0 {
		return FilterDefaultLimit
	}
	if f.Limit > FilterMaxLimit {
		return FilterMaxLimit
	}
	return f.Limit
}

func (f BaseFilter) GetOffset() int {
	if f.Offset < 0 {
		return 0
	}
	return f.Offset
}

// CouponFilter filters coupon list queries
type CouponFilter struct {
	BaseFilter
	StoreID  string     `form:"store_id" json:"store_id"`
	Kind     CouponKind `form:"kind" json:"kind"`
	Category string     `form:"category" json:"category"`
	EventID  string     `form:"event_id" json:"event_id"`
}

// StoreFilter filters store list queries
type StoreFilter struct {
	BaseFilter
	Category string `form:"category" json:"category"`
}
