package product

import (
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/user"
	"math"
	"strings"
	"time"
)

const (
	MAX_NAME_LEN        = 255
	MAX_DESCRIPTION_LEN = 2048

	// Quantity and amount sold are INTEGER columns.
	MAX_QUANTITY    = math.MaxInt32
	MAX_AMOUNT_SOLD = math.MaxInt32
)

type ID int64

type Product struct {
	ID          ID
	OwnerID     user.ID
	Name        string
	Description string
	Quantity    uint32
	UnitPrice   Price
	AmountSold  uint32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Product) IsOwnedBy(userID user.ID) bool {
	return p.OwnerID == userID
}

func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return e.NewInvalidStateError("product", int64(p.ID), "name is not set")
	}
	if p.UnitPrice < 0 {
		return e.NewInvalidStateError("product", int64(p.ID), "unit price is negative")
	}
	return nil
}
