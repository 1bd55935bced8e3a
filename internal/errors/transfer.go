package errors

import "github.com/gofiber/fiber/v2"

var (
	ErrUserNotFound = &DomainError{
		Code:    "USER_NOT_FOUND",
		Message: "payer or payee not found",
		Status:  fiber.StatusNotFound,
	}
	ErrWalletNotFound = &DomainError{
		Code:    "WALLET_NOT_FOUND",
		Message: "payer wallet not found",
		Status:  fiber.StatusNotFound,
	}
	ErrSelfTransfer = &DomainError{
		Code:    "SELF_TRANSFER",
		Message: "you cannot send money to yourself",
		Status:  fiber.StatusForbidden,
	}
	ErrMerchantPayer = &DomainError{
		Code:    "MERCHANT_PAYER",
		Message: "merchants cannot send money",
		Status:  fiber.StatusForbidden,
	}
	ErrNotAuthorized = &DomainError{
		Code:    "NOT_AUTHORIZED",
		Message: "transfer not authorized",
		Status:  fiber.StatusForbidden,
	}
	ErrInsufficientBalance = &DomainError{
		Code:    "INSUFFICIENT_BALANCE",
		Message: "insufficient wallet balance",
		Status:  fiber.StatusForbidden,
	}
	ErrAuthorizationUnavailable = &DomainError{
		Code:    "AUTHORIZATION_UNAVAILABLE",
		Message: "authorization service unavailable",
		Status:  fiber.StatusUnauthorized,
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "amount must be greater than zero",
		Status:  fiber.StatusBadRequest,
	}
	ErrTransactionFailed = &DomainError{
		Code:    "TRANSACTION_FAILED",
		Message: "transaction failed when updating wallet balances",
		Status:  fiber.StatusInternalServerError,
	}
)
