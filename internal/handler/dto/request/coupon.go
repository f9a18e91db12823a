package request

import (
	"time"

	"storefront-partners/internal/pkg/patch"
	"storefront-partners/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type ValidateCouponRequest struct {
	Code     string `json:"code" binding:"required,max=32"`
	Subtotal int64  `json:"subtotal" binding:"min=0"`
}

type CreateCouponRequest struct {
	Code             string    `json:"code" binding:"required,max=32"`
	Type             string    `json:"type" binding:"required"`
	Value            int64     `json:"value" binding:"required,gt=0"`
	Active           *bool     `json:"active,omitempty"`
	StartsAt         time.Time `json:"starts_at" binding:"required"`
	EndsAt           time.Time `json:"ends_at" binding:"required,gtfield=StartsAt"`
	UsageLimit       *int32    `json:"usage_limit,omitempty" binding:"omitempty,gt=0"`
	MinOrderAmount   *int64    `json:"min_order_amount,omitempty" binding:"omitempty,min=0"`
	OwnerPartnerCode *string   `json:"owner_partner_code,omitempty" binding:"omitempty,max=32"`
}

// ToCommand defaults a missing active flag to true.
func (r CreateCouponRequest) ToCommand() (commands.CreateCouponRequest, error) {
	var cmd commands.CreateCouponRequest
	if err := copier.Copy(&cmd, &r); err != nil {
		return commands.CreateCouponRequest{}, err
	}
	cmd.Active = patch.Coalesce(r.Active, true)
	cmd.OwnerPartnerCode = trimmedOrNil(r.OwnerPartnerCode)
	return cmd, nil
}
