package contracts

import (
	"Seedfund/internal/domain/donation"
)

type DonationCreateRequest struct {
	Amount        int64  `json:"amount" binding:"required,gt=0,lte=10000000000"`
	Quantity      int    `json:"quantity" binding:"omitempty,min=1,max=1000"`
	DonorName     string `json:"donorName" binding:"required"`
	DonorEmail    string `json:"donorEmail" binding:"required,email"`
	DonorPhone    string `json:"donorPhone" binding:"omitempty,max=50"`
	DonationType  string `json:"donationType" binding:"required,oneof=one-time monthly quantity"`
	Message       string `json:"message" binding:"omitempty,max=2000"`
	IsAnonymous   bool   `json:"isAnonymous"`
	PaymentMethod string `json:"paymentMethod" binding:"omitempty,max=50"`
}

func (r DonationCreateRequest) ToDomain() donation.CreateRequest {
	return donation.CreateRequest{
		Amount:        r.Amount,
		Quantity:      r.Quantity,
		DonorName:     r.DonorName,
		DonorEmail:    r.DonorEmail,
		DonorPhone:    r.DonorPhone,
		DonationType:  donation.Type(r.DonationType),
		Message:       r.Message,
		IsAnonymous:   r.IsAnonymous,
		PaymentMethod: r.PaymentMethod,
	}
}

type DonationUpdateRequest struct {
	Amount        *int64  `json:"amount" binding:"omitempty,gt=0,lte=10000000000"`
	Quantity      *int    `json:"quantity" binding:"omitempty,min=1,max=1000"`
	DonorName     *string `json:"donorName" binding:"omitempty,min=1"`
	DonorEmail    *string `json:"donorEmail" binding:"omitempty,email"`
	DonorPhone    *string `json:"donorPhone" binding:"omitempty,max=50"`
	DonationType  *string `json:"donationType" binding:"omitempty,oneof=one-time monthly quantity"`
	Message       *string `json:"message" binding:"omitempty,max=2000"`
	IsAnonymous   *bool   `json:"isAnonymous"`
	PaymentMethod *string `json:"paymentMethod" binding:"omitempty,max=50"`
	PaymentStatus *string `json:"paymentStatus" binding:"omitempty,oneof=pending completed failed"`
	TransactionId *string `json:"transactionId" binding:"omitempty,max=255"`
}

func (r DonationUpdateRequest) ToDomain() donation.Patch {
	patch := donation.Patch{
		Amount:        r.Amount,
		Quantity:      r.Quantity,
		DonorName:     r.DonorName,
		DonorEmail:    r.DonorEmail,
		DonorPhone:    r.DonorPhone,
		Message:       r.Message,
		IsAnonymous:   r.IsAnonymous,
		PaymentMethod: r.PaymentMethod,
		TransactionId: r.TransactionId,
	}
	if r.DonationType != nil {
		t := donation.Type(*r.DonationType)
		patch.DonationType = &t
	}
	if r.PaymentStatus != nil {
		s := donation.PaymentStatus(*r.PaymentStatus)
		patch.PaymentStatus = &s
	}
	return patch
}

type DonationResponse struct {
	Donation *donation.Donation `json:"donation"`
	Success  bool               `json:"success"`
}

type DonationListResponse struct {
	Donations []*donation.Donation `json:"donations"`
	Total     int64                `json:"total"`
	Success   bool                 `json:"success"`
}

type DonationStatsResponse struct {
	Stats   *donation.Stats `json:"stats"`
	Success bool            `json:"success"`
}
