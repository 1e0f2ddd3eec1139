package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentOption is a value object embedded in a Plan and snapshotted into a
// Transaction at creation time. It is serialized as JSON text at the storage
// boundary and never addressed on its own.
type PaymentOption struct {
	Method             string          `json:"method"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	Link               string          `json:"link,omitempty"`
	DestinationDetails string          `json:"destinationDetails,omitempty"`
}

type Plan struct {
	ID             string
	Name           string
	Description    string
	PaymentOptions []PaymentOption
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
