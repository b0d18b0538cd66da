package contracts

import (
	"Seedfund/internal/domain/donation"
	"Seedfund/internal/domain/pledge"
)

type PledgeCreateRequest struct {
	Amount       int64  `json:"amount" binding:"required,gt=0,lte=10000000000"`
	Quantity     int    `json:"quantity" binding:"omitempty,min=1,max=1000"`
	DonorName    string `json:"donorName" binding:"required"`
	DonorEmail   string `json:"donorEmail" binding:"required,email"`
	DonorPhone   string `json:"donorPhone" binding:"omitempty,max=50"`
	DonationType string `json:"donationType" binding:"required,oneof=one-time monthly quantity"`
	PledgeDate   string `json:"pledgeDate" binding:"required"`
	Message      string `json:"message" binding:"omitempty,max=2000"`
	IsAnonymous  bool   `json:"isAnonymous"`
}

func (r PledgeCreateRequest) ToDomain() pledge.CreateRequest {
	return pledge.CreateRequest{
		Amount:       r.Amount,
		Quantity:     r.Quantity,
		DonorName:    r.DonorName,
		DonorEmail:   r.DonorEmail,
		DonorPhone:   r.DonorPhone,
		DonationType: donation.Type(r.DonationType),
		PledgeDate:   r.PledgeDate,
		Message:      r.Message,
		IsAnonymous:  r.IsAnonymous,
	}
}

type PledgeUpdateRequest struct {
	Amount       *int64  `json:"amount" binding:"omitempty,gt=0,lte=10000000000"`
	Quantity     *int    `json:"quantity" binding:"omitempty,min=1,max=1000"`
	DonorName    *string `json:"donorName" binding:"omitempty,min=1"`
	DonorEmail   *string `json:"donorEmail" binding:"omitempty,email"`
	DonorPhone   *string `json:"donorPhone" binding:"omitempty,max=50"`
	DonationType *string `json:"donationType" binding:"omitempty,oneof=one-time monthly quantity"`
	PledgeDate   *string `json:"pledgeDate"`
	Message      *string `json:"message" binding:"omitempty,max=2000"`
	IsAnonymous  *bool   `json:"isAnonymous"`
	Status       *string `json:"status" binding:"omitempty,oneof=active fulfilled cancelled"`
}

func (r PledgeUpdateRequest) ToDomain() pledge.Patch {
	patch := pledge.Patch{
		Amount:      r.Amount,
		Quantity:    r.Quantity,
		DonorName:   r.DonorName,
		DonorEmail:  r.DonorEmail,
		DonorPhone:  r.DonorPhone,
		PledgeDate:  r.PledgeDate,
		Message:     r.Message,
		IsAnonymous: r.IsAnonymous,
	}
	if r.DonationType != nil {
		t := donation.Type(*r.DonationType)
		patch.DonationType = &t
	}
	if r.Status != nil {
		s := pledge.Status(*r.Status)
		patch.Status = &s
	}
	return patch
}

type PledgeResponse struct {
	Pledge  *pledge.Pledge `json:"pledge"`
	Success bool           `json:"success"`
}

type PledgeListResponse struct {
	Pledges []*pledge.Pledge `json:"pledges"`
	Total   int64            `json:"total"`
	Success bool             `json:"success"`
}
