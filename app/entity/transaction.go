package entity

import "time"

type TransactionStatus string

const (
	TransactionStatusPendingPayment      TransactionStatus = "PENDING_PAYMENT"
	TransactionStatusPendingVerification TransactionStatus = "PENDING_VERIFICATION"
	TransactionStatusCompleted           TransactionStatus = "COMPLETED"
	TransactionStatusRejected            TransactionStatus = "REJECTED"
)

// IsTerminal reports whether the status admits no further transitions.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusRejected
}

type Transaction struct {
	ID            string
	PhoneNumber   string
	PaymentOption PaymentOption
	ProofText     *string
	Status        TransactionStatus
	CreatedAt     time.Time
	ProcessedAt   *time.Time
}
