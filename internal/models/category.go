package models

// DenialCategory is the inferred subject area of a denied query.
type DenialCategory int

const (
	CategoryFinance DenialCategory = iota
	CategoryIT
	CategoryHR
	CategorySales
	CategoryOther
)

func (c DenialCategory) String() string {
	switch c {
	case CategoryFinance:
		return "Finance"
	case CategoryIT:
		return "IT"
	case CategoryHR:
		return "HR"
	case CategorySales:
		return "Sales"
	default:
		return "Other"
	}
}
