package request

import (
	"storefront-partners/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type CreatePartnerRequest struct {
	Code          string `json:"code" binding:"required,max=32"`
	Name          string `json:"name" binding:"required,max=200"`
	Level         string `json:"level" binding:"required"`
	BankName      string `json:"bank_name" binding:"max=100"`
	AccountNumber string `json:"account_number" binding:"max=34"`
	AccountHolder string `json:"account_holder" binding:"max=200"`
}

func (r CreatePartnerRequest) ToCommand() (commands.CreatePartnerRequest, error) {
	var cmd commands.CreatePartnerRequest
	if err := copier.Copy(&cmd, &r); err != nil {
		return commands.CreatePartnerRequest{}, err
	}
	return cmd, nil
}

type ChangePartnerStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Omitted fields keep their stored values.
type UpdatePartnerProfileRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	BankName      *string `json:"bank_name,omitempty" binding:"omitempty,max=100"`
	AccountNumber *string `json:"account_number,omitempty" binding:"omitempty,max=34"`
	AccountHolder *string `json:"account_holder,omitempty" binding:"omitempty,max=200"`
}

func (r UpdatePartnerProfileRequest) ToCommand() commands.UpdatePartnerProfileRequest {
	return commands.UpdatePartnerProfileRequest{
		Name:          r.Name,
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		AccountHolder: r.AccountHolder,
	}
}

type ListCommissionsQuery struct {
	Status *string `form:"status"`
	After  string  `form:"after"`
	Limit  int     `form:"limit" binding:"omitempty,min=1,max=200"`
}
