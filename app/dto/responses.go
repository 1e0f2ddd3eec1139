package dto

import "github.com/shopspring/decimal"

type PaymentOptionResponse struct {
	Method             string          `json:"method"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	Link               string          `json:"link,omitempty"`
	DestinationDetails string          `json:"destinationDetails,omitempty"`
}

type PlanResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description,omitempty"`
	PaymentOptions []PaymentOptionResponse `json:"paymentOptions"`
	CreatedAt      string                  `json:"createdAt"`
	UpdatedAt      string                  `json:"updatedAt"`
}

type TransactionResponse struct {
	ID            string                `json:"id"`
	PhoneNumber   string                `json:"phoneNumber"`
	PaymentOption PaymentOptionResponse `json:"paymentOption"`
	ProofText     *string               `json:"proofText"`
	Status        string                `json:"status"`
	CreatedAt     string                `json:"createdAt"`
	ProcessedAt   *string               `json:"processedAt,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type SupportInfoResponse struct {
	SupportNumber string `json:"supportNumber"`
}

type StatsResponse struct {
	Total               int64                      `json:"total"`
	PendingPayment      int64                      `json:"pendingPayment"`
	PendingVerification int64                      `json:"pendingVerification"`
	Completed           int64                      `json:"completed"`
	Rejected            int64                      `json:"rejected"`
	Revenue             map[string]decimal.Decimal `json:"revenue"`
}

type ResetStatsResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}
