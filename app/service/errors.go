package service

import "errors"

var (
	ErrPlanNotFound            = errors.New("plan not found")
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrInvalidRequest          = errors.New("invalid request")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrTransactionAlreadyFinal = errors.New("transaction already processed")
	ErrProofNotSubmitted       = errors.New("transaction has no submitted proof")
)
