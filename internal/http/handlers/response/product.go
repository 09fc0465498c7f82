package response

import (
	"inventory/internal/core/domain/product"
)

type Product struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    uint32  `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	AmountSold  uint32  `json:"amount_sold"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func (p *Product) FromDomainType(dp product.Product) {
	p.ID = int64(dp.ID)
	p.UserID = int64(dp.OwnerID)
	p.Name = dp.Name
	p.Description = dp.Description
	p.Quantity = dp.Quantity
	p.UnitPrice = dp.UnitPrice.Float64()
	p.AmountSold = dp.AmountSold
	p.CreatedAt = dp.CreatedAt.UTC().Format(TIME_FORMAT)
	p.UpdatedAt = dp.UpdatedAt.UTC().Format(TIME_FORMAT)
}
