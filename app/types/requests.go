package types

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/recargaexpress/ms-go-recharges/app/entity"
)

// PaymentOptionPayload is the wire shape of a payment option, shared by plan
// bodies and transaction submissions.
type PaymentOptionPayload struct {
	Method             string          `json:"method"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	Link               string          `json:"link,omitempty"`
	DestinationDetails string          `json:"destinationDetails,omitempty"`
}

func (p *PaymentOptionPayload) Validate() error {
	if strings.TrimSpace(p.Method) == "" {
		return errors.New("payment option method is required")
	}
	if p.Amount.IsNegative() {
		return errors.New("payment option amount must not be negative")
	}
	return nil
}

func (p *PaymentOptionPayload) ToEntity() entity.PaymentOption {
	return entity.PaymentOption{
		Method:             strings.TrimSpace(p.Method),
		Amount:             p.Amount,
		Currency:           strings.TrimSpace(p.Currency),
		Link:               strings.TrimSpace(p.Link),
		DestinationDetails: strings.TrimSpace(p.DestinationDetails),
	}
}

func PaymentOptionsToEntities(payloads []PaymentOptionPayload) []entity.PaymentOption {
	options := make([]entity.PaymentOption, 0, len(payloads))
	for i := range payloads {
		options = append(options, payloads[i].ToEntity())
	}
	return options
}

type CreatePlanRequest struct {
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	PaymentOptions *[]PaymentOptionPayload `json:"paymentOptions"`
}

func NewCreatePlanRequestFromContext(ctx echo.Context) (*CreatePlanRequest, error) {
	var body CreatePlanRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Description = strings.TrimSpace(body.Description)
	return &body, nil
}

func (r *CreatePlanRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.PaymentOptions == nil {
		return errors.New("paymentOptions is required")
	}
	for i := range *r.PaymentOptions {
		if err := (*r.PaymentOptions)[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

type UpdatePlanRequest struct {
	ID             string
	Name           *string                 `json:"name"`
	Description    *string                 `json:"description"`
	PaymentOptions *[]PaymentOptionPayload `json:"paymentOptions"`
}

func NewUpdatePlanRequestFromContext(ctx echo.Context) (*UpdatePlanRequest, error) {
	var body UpdatePlanRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.ID = strings.TrimSpace(ctx.Param("id"))
	return &body, nil
}

func (r *UpdatePlanRequest) Validate() error {
	if r.ID == "" {
		return errors.New("invalid plan id")
	}
	if r.Name == nil && r.Description == nil && r.PaymentOptions == nil {
		return errors.New("no fields provided for update")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name must not be empty")
	}
	if r.PaymentOptions != nil {
		for i := range *r.PaymentOptions {
			if err := (*r.PaymentOptions)[i].Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

type PlanIDRequest struct {
	ID string
}

func NewPlanIDRequestFromContext(ctx echo.Context) (*PlanIDRequest, error) {
	return &PlanIDRequest{ID: strings.TrimSpace(ctx.Param("id"))}, nil
}

func (r *PlanIDRequest) Validate() error {
	if r.ID == "" {
		return errors.New("invalid plan id")
	}
	return nil
}

type CreateTransactionRequest struct {
	PhoneNumber   string                `json:"phoneNumber"`
	PaymentOption *PaymentOptionPayload `json:"paymentOption"`
	ProofText     *string               `json:"proofText"`
}

func NewCreateTransactionRequestFromContext(ctx echo.Context) (*CreateTransactionRequest, error) {
	var body CreateTransactionRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.PhoneNumber = strings.TrimSpace(body.PhoneNumber)
	return &body, nil
}

func (r *CreateTransactionRequest) Validate() error {
	if r.PhoneNumber == "" {
		return errors.New("phoneNumber is required")
	}
	if r.PaymentOption == nil {
		return errors.New("paymentOption is required")
	}
	if err := r.PaymentOption.Validate(); err != nil {
		return err
	}
	if r.ProofText != nil && strings.TrimSpace(*r.ProofText) == "" {
		return errors.New("proofText must not be empty when provided")
	}
	return nil
}

type SubmitProofRequest struct {
	ID        string
	ProofText string `json:"proofText"`
}

func NewSubmitProofRequestFromContext(ctx echo.Context) (*SubmitProofRequest, error) {
	var body SubmitProofRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.ID = strings.TrimSpace(ctx.Param("id"))
	body.ProofText = strings.TrimSpace(body.ProofText)
	return &body, nil
}

func (r *SubmitProofRequest) Validate() error {
	if r.ID == "" {
		return errors.New("invalid transaction id")
	}
	if r.ProofText == "" {
		return errors.New("proofText is required")
	}
	return nil
}

type ProcessTransactionRequest struct {
	ID     string
	Status string `json:"status"`
}

func NewProcessTransactionRequestFromContext(ctx echo.Context) (*ProcessTransactionRequest, error) {
	var body ProcessTransactionRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.ID = strings.TrimSpace(ctx.Param("id"))
	body.Status = strings.TrimSpace(body.Status)
	if body.Status == "" {
		body.Status = string(entity.TransactionStatusCompleted)
	}
	return &body, nil
}

func (r *ProcessTransactionRequest) Validate() error {
	if r.ID == "" {
		return errors.New("invalid transaction id")
	}
	switch entity.TransactionStatus(r.Status) {
	case entity.TransactionStatusCompleted, entity.TransactionStatusRejected:
		return nil
	default:
		return errors.New("status must be COMPLETED or REJECTED")
	}
}

type ListTransactionsRequest struct {
	Status string
}

func NewListTransactionsRequestFromContext(ctx echo.Context) (*ListTransactionsRequest, error) {
	return &ListTransactionsRequest{Status: strings.TrimSpace(ctx.QueryParam("status"))}, nil
}

func (r *ListTransactionsRequest) Validate() error {
	if r.Status == "" {
		return nil
	}
	switch entity.TransactionStatus(r.Status) {
	case entity.TransactionStatusPendingPayment,
		entity.TransactionStatusPendingVerification,
		entity.TransactionStatusCompleted,
		entity.TransactionStatusRejected:
		return nil
	default:
		return errors.New("unknown status filter")
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewLoginRequestFromContext(ctx echo.Context) (*LoginRequest, error) {
	var body LoginRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.Username = strings.TrimSpace(body.Username)
	return &body, nil
}

func (r *LoginRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return errors.New("username and password are required")
	}
	return nil
}

type ResetStatsRequest struct {
	Confirm bool `json:"confirm"`
}

func NewResetStatsRequestFromContext(ctx echo.Context) (*ResetStatsRequest, error) {
	var body ResetStatsRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	return &body, nil
}

func (r *ResetStatsRequest) Validate() error {
	if !r.Confirm {
		return errors.New("confirmation is required")
	}
	return nil
}
