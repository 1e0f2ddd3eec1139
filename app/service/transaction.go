package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/recargaexpress/ms-go-recharges/app/entity"
	"github.com/recargaexpress/ms-go-recharges/app/notify"
	"github.com/recargaexpress/ms-go-recharges/app/repository"
	"github.com/recargaexpress/ms-go-recharges/app/types"
)

type transactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	Update(ctx context.Context, transaction *entity.Transaction) error
	FindByID(ctx context.Context, id string) (*entity.Transaction, error)
	List(ctx context.Context, status entity.TransactionStatus) ([]*entity.Transaction, error)
	CountByStatus(ctx context.Context) (map[entity.TransactionStatus]int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type eventPublisher interface {
	Publish(event notify.Event)
}

type Stats struct {
	Total               int64
	PendingPayment      int64
	PendingVerification int64
	Completed           int64
	Rejected            int64
	Revenue             map[string]decimal.Decimal
}

type TransactionService struct {
	transactionRepo transactionRepository
	publisher       eventPublisher
}

func NewTransactionService(transactionRepo transactionRepository, publisher eventPublisher) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		publisher:       publisher,
	}
}

// CreateTransaction records a new recharge request. The payment option is a
// point-in-time snapshot, decoupled from the plan it came from. A request
// carrying proof text starts directly in PENDING_VERIFICATION; otherwise the
// record waits in PENDING_PAYMENT for a later proof submission.
func (s *TransactionService) CreateTransaction(ctx context.Context, req *types.CreateTransactionRequest) (*entity.Transaction, error) {
	if req.PhoneNumber == "" || req.PaymentOption == nil {
		return nil, ErrInvalidRequest
	}

	status := entity.TransactionStatusPendingPayment
	var proofText *string
	if req.ProofText != nil {
		status = entity.TransactionStatusPendingVerification
		proof := *req.ProofText
		proofText = &proof
	}

	transaction := &entity.Transaction{
		ID:            uuid.NewString(),
		PhoneNumber:   req.PhoneNumber,
		PaymentOption: req.PaymentOption.ToEntity(),
		ProofText:     proofText,
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	s.publisher.Publish(notify.Event{
		Type:    notify.EventTypeNewTransaction,
		Payload: transaction,
	})

	return transaction, nil
}

// SubmitProof attaches payment proof and moves the record to
// PENDING_VERIFICATION. Terminal records are rejected; re-submitting proof on
// a record already pending verification overwrites the previous proof.
func (s *TransactionService) SubmitProof(ctx context.Context, req *types.SubmitProofRequest) (*entity.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}
	if transaction.Status.IsTerminal() {
		return nil, ErrTransactionAlreadyFinal
	}

	proof := req.ProofText
	transaction.ProofText = &proof
	transaction.Status = entity.TransactionStatusPendingVerification

	if err := s.transactionRepo.Update(ctx, transaction); err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	s.publisher.Publish(notify.Event{
		Type:    notify.EventTypeProofSubmitted,
		Payload: transaction,
	})

	return transaction, nil
}

// ProcessTransaction applies the terminal transition. Only records in
// PENDING_VERIFICATION can be processed; the status never moves backwards.
func (s *TransactionService) ProcessTransaction(ctx context.Context, req *types.ProcessTransactionRequest) (*entity.Transaction, error) {
	outcome := entity.TransactionStatus(req.Status)
	if outcome != entity.TransactionStatusCompleted && outcome != entity.TransactionStatusRejected {
		return nil, ErrInvalidStatus
	}

	transaction, err := s.transactionRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}
	if transaction.Status.IsTerminal() {
		return nil, ErrTransactionAlreadyFinal
	}
	if transaction.Status != entity.TransactionStatusPendingVerification {
		return nil, ErrProofNotSubmitted
	}

	now := time.Now().UTC()
	transaction.Status = outcome
	transaction.ProcessedAt = &now

	if err := s.transactionRepo.Update(ctx, transaction); err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	return transaction, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, req *types.ListTransactionsRequest) ([]*entity.Transaction, error) {
	return s.transactionRepo.List(ctx, entity.TransactionStatus(req.Status))
}

// Stats aggregates per-status counts and, for completed recharges, revenue
// summed per currency from the stored payment option snapshots.
func (s *TransactionService) Stats(ctx context.Context) (*Stats, error) {
	counts, err := s.transactionRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		PendingPayment:      counts[entity.TransactionStatusPendingPayment],
		PendingVerification: counts[entity.TransactionStatusPendingVerification],
		Completed:           counts[entity.TransactionStatusCompleted],
		Rejected:            counts[entity.TransactionStatusRejected],
		Revenue:             make(map[string]decimal.Decimal),
	}
	for _, count := range counts {
		stats.Total += count
	}

	if stats.Completed == 0 {
		return stats, nil
	}

	completed, err := s.transactionRepo.List(ctx, entity.TransactionStatusCompleted)
	if err != nil {
		return nil, err
	}
	for _, transaction := range completed {
		currency := transaction.PaymentOption.Currency
		if currency == "" {
			continue
		}
		stats.Revenue[currency] = stats.Revenue[currency].Add(transaction.PaymentOption.Amount)
	}

	return stats, nil
}

func (s *TransactionService) ResetStats(ctx context.Context) (int64, error) {
	return s.transactionRepo.DeleteAll(ctx)
}
