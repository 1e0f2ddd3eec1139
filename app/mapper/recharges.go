package mapper

import (
	"time"

	"github.com/recargaexpress/ms-go-recharges/app/dto"
	"github.com/recargaexpress/ms-go-recharges/app/entity"
	"github.com/recargaexpress/ms-go-recharges/app/service"
)

func PaymentOptionToResponse(option entity.PaymentOption) dto.PaymentOptionResponse {
	return dto.PaymentOptionResponse{
		Method:             option.Method,
		Amount:             option.Amount,
		Currency:           option.Currency,
		Link:               option.Link,
		DestinationDetails: option.DestinationDetails,
	}
}

func PaymentOptionsToResponse(options []entity.PaymentOption) []dto.PaymentOptionResponse {
	result := make([]dto.PaymentOptionResponse, 0, len(options))
	for _, option := range options {
		result = append(result, PaymentOptionToResponse(option))
	}
	return result
}

func PlanToResponse(item *entity.Plan) dto.PlanResponse {
	return dto.PlanResponse{
		ID:             item.ID,
		Name:           item.Name,
		Description:    item.Description,
		PaymentOptions: PaymentOptionsToResponse(item.PaymentOptions),
		CreatedAt:      item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func PlansToResponse(items []*entity.Plan) []dto.PlanResponse {
	result := make([]dto.PlanResponse, 0, len(items))
	for _, item := range items {
		result = append(result, PlanToResponse(item))
	}
	return result
}

func TransactionToResponse(item *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            item.ID,
		PhoneNumber:   item.PhoneNumber,
		PaymentOption: PaymentOptionToResponse(item.PaymentOption),
		ProofText:     item.ProofText,
		Status:        string(item.Status),
		CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
		ProcessedAt:   formatTime(item.ProcessedAt),
	}
}

func TransactionsToResponse(items []*entity.Transaction) []dto.TransactionResponse {
	result := make([]dto.TransactionResponse, 0, len(items))
	for _, item := range items {
		result = append(result, TransactionToResponse(item))
	}
	return result
}

func StatsToResponse(stats *service.Stats) dto.StatsResponse {
	return dto.StatsResponse{
		Total:               stats.Total,
		PendingPayment:      stats.PendingPayment,
		PendingVerification: stats.PendingVerification,
		Completed:           stats.Completed,
		Rejected:            stats.Rejected,
		Revenue:             stats.Revenue,
	}
}

func formatTime(v *time.Time) *string {
	if v == nil {
		return nil
	}
	formatted := v.UTC().Format(time.RFC3339)
	return &formatted
}
