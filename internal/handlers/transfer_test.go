package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "payflow/internal/errors"
	"payflow/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTransferService struct{ mock.Mock }

func (m *MockTransferService) Transfer(ctx context.Context, payerID, payeeID uint, amount models.Money) (*models.Transaction, error) {
	args := m.Called(payerID, payeeID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func newTestApp(svc *MockTransferService) *fiber.App {
	app := fiber.New()
	app.Post("/transfer", NewTransferHandler(svc).Transfer)
	return app
}

func postTransfer(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/transfer", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestTransferHandler_Success(t *testing.T) {
	svc := new(MockTransferService)
	txn := &models.Transaction{
		Reference:   "ref-123",
		PayerID:     1,
		PayeeID:     2,
		AmountCents: 10050,
		Status:      models.TransactionStatusCompleted,
	}
	txn.ID = 42
	svc.On("Transfer", uint(1), uint(2), models.NewMoneyFromCents(10050)).Return(txn, nil)

	resp := postTransfer(t, newTestApp(svc), `{"payer": 1, "payee": 2, "value": 100.50}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Contains(t, body["message"], "ref-123")

	svc.AssertExpectations(t)
}

func TestTransferHandler_InvalidBody(t *testing.T) {
	svc := new(MockTransferService)

	resp := postTransfer(t, newTestApp(svc), `{not json`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransferHandler_NonPositiveValue(t *testing.T) {
	svc := new(MockTransferService)

	tests := []string{
		`{"payer": 1, "payee": 2, "value": 0}`,
		`{"payer": 1, "payee": 2, "value": -5}`,
		`{"payer": 1, "payee": 2}`,
	}
	for _, body := range tests {
		resp := postTransfer(t, newTestApp(svc), body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
	svc.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransferHandler_MissingParties(t *testing.T) {
	svc := new(MockTransferService)

	resp := postTransfer(t, newTestApp(svc), `{"payer": 0, "payee": 2, "value": 10}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTransferHandler_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"user not found", domainerrors.ErrUserNotFound, http.StatusNotFound},
		{"wallet not found", domainerrors.ErrWalletNotFound, http.StatusNotFound},
		{"self transfer", domainerrors.ErrSelfTransfer, http.StatusForbidden},
		{"merchant payer", domainerrors.ErrMerchantPayer, http.StatusForbidden},
		{"not authorized", domainerrors.ErrNotAuthorized, http.StatusForbidden},
		{"insufficient balance", domainerrors.ErrInsufficientBalance, http.StatusForbidden},
		{"authorization unavailable", domainerrors.ErrAuthorizationUnavailable, http.StatusUnauthorized},
		{"persistence failure", domainerrors.ErrTransactionFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockTransferService)
			svc.On("Transfer", uint(1), uint(2), mock.Anything).Return(nil, tt.err)

			resp := postTransfer(t, newTestApp(svc), `{"payer": 1, "payee": 2, "value": 10}`)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
