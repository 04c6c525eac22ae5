package handlers

import (
	"strconv"

	"iadev-dashboard/internal/core/services"
	"iadev-dashboard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler handles ledger endpoints
type TransactionHandler struct {
	txService *services.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{txService: txService}
}

// PreviousBalanceResponse is the carry-forward balance of a month
type PreviousBalanceResponse struct {
	PreviousBalance float64 `json:"saldoAnterior"`
}

// List lists a month's transactions
// @Summary List month transactions
// @Description List transactions of a month, newest first. mes is zero-based (0 = January).
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param ano query int true "Year"
// @Param mes query int true "Month, 0-11"
// @Success 200 {array} models.Transaction
// @Failure 400 {object} response.Response
// @Router /api/transacoes [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	year, month, ok := yearMonth(c)
	if !ok {
		return response.BadRequest(c, "ano and mes are required; mes must be 0-11")
	}

	txs, err := h.txService.ListMonth(c.Context(), year, month)
	if err != nil {
		return writeError(c, err, "Failed to list transactions")
	}
	return response.JSON(c, txs)
}

// PreviousBalance returns the balance carried into a month
// @Summary Previous balance
// @Description Signed total of every transaction dated before the month
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param ano query int true "Year"
// @Param mes query int true "Month, 0-11"
// @Success 200 {object} PreviousBalanceResponse
// @Router /api/transacoes/saldo-anterior [get]
func (h *TransactionHandler) PreviousBalance(c *fiber.Ctx) error {
	year, month, ok := yearMonth(c)
	if !ok {
		return response.BadRequest(c, "ano and mes are required; mes must be 0-11")
	}

	balance, err := h.txService.PreviousBalance(c.Context(), year, month)
	if err != nil {
		return writeError(c, err, "Failed to compute previous balance")
	}
	return response.JSON(c, PreviousBalanceResponse{PreviousBalance: balance})
}

// Create records a transaction
// @Summary Create transaction
// @Tags Transactions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param descricao formData string true "Description"
// @Param valor formData string true "Amount"
// @Param tipo formData string true "dizimo, oferta or gastos"
// @Param dataManual formData string true "Date, YYYY-MM-DD"
// @Param comprovante formData file false "Receipt"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} response.Response
// @Router /api/transacoes [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	form, err := readForm(c)
	if err != nil {
		return writeError(c, err, "Failed to create transaction")
	}

	receipt, done, err := form.file("comprovante")
	if err != nil {
		return writeError(c, err, "Failed to create transaction")
	}
	defer done()

	input := transactionInput(form)
	input.Receipt = receipt

	result, err := h.txService.Create(c.Context(), input)
	if err != nil {
		return writeError(c, err, "Failed to create transaction")
	}

	setUploadWarning(c, result.Warning)
	return response.Created(c, result.Transaction)
}

// Update updates a transaction
// @Summary Update transaction
// @Description Replace description, amount, kind and date. The receipt is kept.
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/transacoes/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "Invalid transaction ID")
	}

	form, err := readForm(c)
	if err != nil {
		return writeError(c, err, "Failed to update transaction")
	}

	tx, err := h.txService.Update(c.Context(), id, transactionInput(form))
	if err != nil {
		return writeError(c, err, "Failed to update transaction")
	}
	return response.JSON(c, tx)
}

// Delete deletes a transaction
// @Summary Delete transaction
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/transacoes/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, "Invalid transaction ID")
	}

	if err := h.txService.Delete(c.Context(), id); err != nil {
		return writeError(c, err, "Failed to delete transaction")
	}
	return response.Success(c, "Transaction deleted")
}

func transactionInput(form *formFields) *services.TransactionInput {
	return &services.TransactionInput{
		Description: form.text("descricao"),
		Amount:      form.text("valor"),
		Kind:        form.text("tipo"),
		Date:        form.text("dataManual"),
	}
}

// yearMonth reads ano and a zero-based mes from the query string
func yearMonth(c *fiber.Ctx) (int, int, bool) {
	year, err := strconv.Atoi(c.Query("ano"))
	if err != nil || year < 1 || year > 9999 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("mes"))
	if err != nil || month < 0 || month > 11 {
		return 0, 0, false
	}
	return year, month, true
}
