package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/recargaexpress/ms-go-recharges/app/dto"
	"github.com/recargaexpress/ms-go-recharges/app/factory"
	"github.com/recargaexpress/ms-go-recharges/app/mapper"
	"github.com/recargaexpress/ms-go-recharges/app/service"
	"github.com/recargaexpress/ms-go-recharges/app/types"
)

type TransactionController struct {
	transactionService *service.TransactionService
	logger             logrus.FieldLogger
}

func NewTransactionController(transactionService *service.TransactionService) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
		logger:             factory.NewModuleLogger("transactions-controller"),
	}
}

func (c *TransactionController) CreateTransaction(ctx echo.Context) error {
	req, err := types.NewCreateTransactionRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.transactionService.CreateTransaction(ctx.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			return writeError(ctx, http.StatusBadRequest, err.Error())
		}
		c.logger.WithError(err).Error("Create transaction failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusCreated, mapper.TransactionToResponse(item))
}

func (c *TransactionController) SubmitProof(ctx echo.Context) error {
	req, err := types.NewSubmitProofRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	_, err = c.transactionService.SubmitProof(ctx.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTransactionNotFound):
			return writeError(ctx, http.StatusNotFound, "transaction not found")
		case errors.Is(err, service.ErrTransactionAlreadyFinal):
			return writeError(ctx, http.StatusConflict, "transaction already processed")
		default:
			c.logger.WithError(err).Error("Submit proof failed")
			return writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	return ctx.JSON(http.StatusOK, &dto.MessageResponse{Message: "Proof received"})
}

func (c *TransactionController) ListTransactions(ctx echo.Context) error {
	req, err := types.NewListTransactionsRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	items, err := c.transactionService.ListTransactions(ctx.Request().Context(), req)
	if err != nil {
		c.logger.WithError(err).Error("List transactions failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, mapper.TransactionsToResponse(items))
}

func (c *TransactionController) ProcessTransaction(ctx echo.Context) error {
	req, err := types.NewProcessTransactionRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.transactionService.ProcessTransaction(ctx.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrTransactionNotFound):
			return writeError(ctx, http.StatusNotFound, "transaction not found")
		case errors.Is(err, service.ErrTransactionAlreadyFinal):
			return writeError(ctx, http.StatusConflict, "transaction already processed")
		case errors.Is(err, service.ErrProofNotSubmitted):
			return writeError(ctx, http.StatusConflict, "transaction has no submitted proof")
		default:
			c.logger.WithError(err).Error("Process transaction failed")
			return writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	c.logger.WithFields(logrus.Fields{
		"transaction_id": item.ID,
		"status":         item.Status,
		"phone_number":   item.PhoneNumber,
	}).Info("Transaction processed")

	return ctx.JSON(http.StatusOK, &dto.MessageResponse{Message: "Recharge processed successfully"})
}

func (c *TransactionController) Stats(ctx echo.Context) error {
	stats, err := c.transactionService.Stats(ctx.Request().Context())
	if err != nil {
		c.logger.WithError(err).Error("Stats failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, mapper.StatsToResponse(stats))
}

func (c *TransactionController) ResetStats(ctx echo.Context) error {
	req, err := types.NewResetStatsRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	deleted, err := c.transactionService.ResetStats(ctx.Request().Context())
	if err != nil {
		c.logger.WithError(err).Error("Reset stats failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	c.logger.WithField("deleted", deleted).Warn("Transaction history reset")

	return ctx.JSON(http.StatusOK, &dto.ResetStatsResponse{
		Message: "Transaction history cleared",
		Deleted: deleted,
	})
}
