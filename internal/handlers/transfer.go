package handlers

import (
	"errors"
	"fmt"

	domainerrors "payflow/internal/errors"
	"payflow/internal/models"
	"payflow/internal/services/transfer"
	"payflow/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// TransferHandler exposes the transfer endpoint.
type TransferHandler struct {
	service transfer.Service
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(s transfer.Service) *TransferHandler { return &TransferHandler{service: s} }

// Transfer handles POST /transfer requests. The decimal amount is
// parsed into Money exactly once, here at the boundary; everything
// downstream works on minor units.
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	var req struct {
		Payer uint            `json:"payer"`
		Payee uint            `json:"payee"`
		Value decimal.Decimal `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.Payer == 0 || req.Payee == 0 {
		return response.BadRequest(c, "payer and payee are required")
	}

	amount := models.NewMoneyFromDecimal(req.Value)
	if !amount.IsPositive() {
		return response.BadRequest(c, "value must be greater than zero")
	}

	txn, err := h.service.Transfer(c.Context(), req.Payer, req.Payee, amount)
	if err != nil {
		var domainErr *domainerrors.DomainError
		if errors.As(err, &domainErr) {
			return response.Error(c, domainErr.Status, domainErr.Message)
		}
		return response.ServerError(c, "unexpected error")
	}

	return response.Success(c,
		fmt.Sprintf("Transaction successful. Transaction ID: %s", txn.Reference),
		txn)
}
