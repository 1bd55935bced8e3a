package handlers

import (
	"strconv"

	"payflow/internal/repositories"
	"payflow/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler exposes read access to the transaction log.
type TransactionHandler struct {
	transactions repositories.TransactionRepository
}

func NewTransactionHandler(transactions repositories.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// History handles GET /users/:id/transactions.
func (h *TransactionHandler) History(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || userID == 0 {
		return response.BadRequest(c, "invalid user id")
	}

	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	history, err := h.transactions.GetHistory(uint(userID), limit, offset)
	if err != nil {
		return response.ServerError(c, "failed to get transaction history")
	}

	return response.Success(c, "transaction history", history)
}
