package product

import (
	"context"
	c "inventory/internal/core/domain/common"
	"inventory/internal/core/domain/user"
	"time"
)

type CreateInput struct {
	OwnerID     user.ID
	Name        string
	Description string
	Quantity    uint32
	UnitPrice   Price
	CreatedAt   time.Time
}

type ReadOptions struct {
	OwnerIDEquals c.Optional[user.ID]
	OrderBy       OrderBy
	Limit         c.Optional[uint]
	Offset        uint
}

type UpdateInput struct {
	ID                  ID
	DoNameUpdate        bool
	Name                string
	DoDescriptionUpdate bool
	Description         string
	DoQuantityUpdate    bool
	Quantity            uint32
	DoUnitPriceUpdate   bool
	UnitPrice           Price
	DoAmountSoldUpdate  bool
	AmountSold          uint32
	UpdatedAt           time.Time
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Product, error)
	// Lock works only within a unit of work.
	Lock(ctx context.Context, id ID) error
	GetByID(ctx context.Context, id ID) (Product, error)
	Read(ctx context.Context, options ReadOptions) ([]Product, error)
	Count(ctx context.Context, options ReadOptions) (uint, error)
	Update(ctx context.Context, input UpdateInput) (Product, error)
	Delete(ctx context.Context, id ID) error
}
