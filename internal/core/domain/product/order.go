package product

import "errors"

type OrderBy struct {
	v string
}

var (
	OrderByNotSet   OrderBy = OrderBy{}
	OrderByIDAsc    OrderBy = OrderBy{v: "id_asc"}
	OrderByIDDesc   OrderBy = OrderBy{v: "id_desc"}
	OrderByNameAsc  OrderBy = OrderBy{v: "name_asc"}
	OrderByNameDesc OrderBy = OrderBy{v: "name_desc"}
)

var ErrParseOrderBy = errors.New("invalid order")

func ParseOrderBy(value string) (OrderBy, error) {
	switch value {
	case "id_asc":
		return OrderByIDAsc, nil
	case "id_desc":
		return OrderByIDDesc, nil
	case "name_asc":
		return OrderByNameAsc, nil
	case "name_desc":
		return OrderByNameDesc, nil
	default:
		return OrderByNotSet, ErrParseOrderBy
	}
}

func (o OrderBy) String() string {
	return o.v
}
