package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	mysqlDriver "github.com/go-sql-driver/mysql"

	"github.com/recargaexpress/ms-go-recharges/app/entity"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func isDuplicateEntryError(err error) bool {
	var mysqlErr *mysqlDriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func nullableStringValue(v *string) interface{} {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return *v
}

func nullableTimeValue(v *time.Time) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// encodePaymentOptions serializes the option list for the payment_options text
// column. A nil slice is stored as an empty list so the column never holds
// NULL or junk.
func encodePaymentOptions(options []entity.PaymentOption) (string, error) {
	if options == nil {
		options = []entity.PaymentOption{}
	}
	raw, err := json.Marshal(options)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// decodePaymentOptions tolerates malformed stored text and hands back an empty
// list instead of failing the read, keeping list endpoints available.
func decodePaymentOptions(raw string) []entity.PaymentOption {
	options := []entity.PaymentOption{}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "undefined" {
		return options
	}
	if err := json.Unmarshal([]byte(trimmed), &options); err != nil {
		return []entity.PaymentOption{}
	}
	return options
}

func encodePaymentOption(option entity.PaymentOption) (string, error) {
	raw, err := json.Marshal(option)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodePaymentOption(raw string) entity.PaymentOption {
	var option entity.PaymentOption
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "undefined" {
		return option
	}
	if err := json.Unmarshal([]byte(trimmed), &option); err != nil {
		return entity.PaymentOption{}
	}
	return option
}
