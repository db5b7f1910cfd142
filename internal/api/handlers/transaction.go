package handlers

import (
	"errors"
	"net/http"

	apperrors "brokerage-backoffice/internal/errors"
	"brokerage-backoffice/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	transactionService service.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService service.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction handles POST /transactions
// @Summary Record a closed transaction
// @Description Record a closed sale, compute its commission split and generate revenue share payouts up the sponsor chain
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body service.CreateTransactionRequest true "Transaction data"
// @Success 201 {object} service.TransactionResponse "Successfully created transaction"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Closing agent not found"
// @Failure 409 {object} map[string]interface{} "Concurrent payout computation conflict"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req service.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txn, err := h.transactionService.Create(&req)
	if err != nil {
		h.writeTransactionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, txn)
}

// GetTransaction handles GET /transactions/:id
// @Summary Get transaction by ID
// @Description Get a specific transaction with its commission breakdown
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} service.TransactionResponse "Successfully retrieved transaction"
// @Failure 400 {object} map[string]interface{} "Invalid transaction ID"
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction ID"})
		return
	}

	txn, err := h.transactionService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, txn)
}

// GetAllTransactions handles GET /transactions (optional agent_id parameter)
// @Summary List transactions
// @Description Get all transactions with optional closing agent filtering and pagination
// @Tags transactions
// @Accept json
// @Produce json
// @Param agent_id query string false "Agent ID (UUID) to filter transactions by closing agent"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TransactionListResponse "Successfully retrieved transactions"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /transactions [get]
func (h *TransactionHandler) GetAllTransactions(c *gin.Context) {
	page, pageSize := parsePagination(c)

	agentIDStr := c.Query("agent_id")
	if agentIDStr != "" {
		agentID, err := uuid.Parse(agentIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent ID"})
			return
		}

		txns, err := h.transactionService.ListByAgent(agentID, page, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, txns)
		return
	}

	txns, err := h.transactionService.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, txns)
}

// UpdateTransaction handles PUT /transactions/:id
// @Summary Update a transaction
// @Description Update a transaction's financial inputs. The commission split and revenue share payouts are recomputed from scratch.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param transaction body service.UpdateTransactionRequest true "Updated transaction data"
// @Success 200 {object} service.TransactionResponse "Successfully updated transaction"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Failure 409 {object} map[string]interface{} "Concurrent payout computation conflict"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction ID"})
		return
	}

	var req service.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txn, err := h.transactionService.Update(id, &req)
	if err != nil {
		h.writeTransactionError(c, err)
		return
	}

	c.JSON(http.StatusOK, txn)
}

// DeleteTransaction handles DELETE /transactions/:id
// @Summary Delete a transaction
// @Description Delete a transaction and all revenue share payouts generated from it
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 204 "Successfully deleted transaction"
// @Failure 400 {object} map[string]interface{} "Invalid transaction ID"
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction ID"})
		return
	}

	if err := h.transactionService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// writeTransactionError maps create/update failures to HTTP statuses.
func (h *TransactionHandler) writeTransactionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrAgentNotFound), errors.Is(err, apperrors.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrCapSerializationExhausted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsDataIntegrity(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
