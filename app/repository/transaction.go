package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/recargaexpress/ms-go-recharges/app/entity"
)

var (
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrTransactionAlreadyExists = errors.New("transaction already exists")
)

type TransactionRepository struct {
	db DBTX
}

func NewTransactionRepository(db DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	option, err := encodePaymentOption(transaction.PaymentOption)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (id, phone_number, proof_text, status, payment_option, created_at, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		transaction.ID,
		transaction.PhoneNumber,
		nullableStringValue(transaction.ProofText),
		string(transaction.Status),
		option,
		transaction.CreatedAt,
		nullableTimeValue(transaction.ProcessedAt),
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrTransactionAlreadyExists
		}
		return err
	}
	return nil
}

// Update writes the mutable lifecycle fields. The payment_option snapshot and
// created_at are deliberately not part of the statement.
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	query := `
		UPDATE transactions
		SET proof_text = ?, status = ?, processed_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		nullableStringValue(transaction.ProofText),
		string(transaction.Status),
		nullableTimeValue(transaction.ProcessedAt),
		transaction.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	query := `
		SELECT id, phone_number, proof_text, status, payment_option, created_at, processed_at
		FROM transactions
		WHERE id = ?
	`

	item := &entity.Transaction{}
	if err := scanTransaction(r.db.QueryRowContext(ctx, query, id), item); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *TransactionRepository) List(ctx context.Context, status entity.TransactionStatus) ([]*entity.Transaction, error) {
	query := `
		SELECT id, phone_number, proof_text, status, payment_option, created_at, processed_at
		FROM transactions
	`

	args := make([]interface{}, 0, 1)
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, string(status))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.Transaction, 0)
	for rows.Next() {
		item := &entity.Transaction{}
		if err := scanTransaction(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *TransactionRepository) CountByStatus(ctx context.Context) (map[entity.TransactionStatus]int64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM transactions
		GROUP BY status
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[entity.TransactionStatus]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[entity.TransactionStatus(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *TransactionRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanTransaction(scanner rowScanner, item *entity.Transaction) error {
	var proofText sql.NullString
	var status string
	var option sql.NullString
	var processedAt sql.NullTime

	err := scanner.Scan(
		&item.ID,
		&item.PhoneNumber,
		&proofText,
		&status,
		&option,
		&item.CreatedAt,
		&processedAt,
	)
	if err != nil {
		return err
	}

	if proofText.Valid {
		item.ProofText = &proofText.String
	} else {
		item.ProofText = nil
	}
	item.Status = entity.TransactionStatus(status)
	item.PaymentOption = decodePaymentOption(option.String)
	if processedAt.Valid {
		item.ProcessedAt = &processedAt.Time
	} else {
		item.ProcessedAt = nil
	}

	return nil
}
