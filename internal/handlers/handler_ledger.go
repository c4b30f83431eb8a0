package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/abdulhafizu/HafeezVentures2/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for the ledger account and its transaction log.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("", h.getAccount)
		ledger.GET("/statement", h.getStatement)
		ledger.GET("/integrity", h.checkIntegrity)
		ledger.POST("/transactions", h.postTransaction)
	}
}

// getAccount godoc
// @Summary Get the ledger account
// @Description Returns the ledger account with its current balance
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.LedgerAccountResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Ledger account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve ledger account"
// @Security BearerAuth
// @Router /ledger [get]
func (h *ledgerHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.ledgerService.GetLedgerAccount(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve ledger account")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerAccountResponse(account))
}

// getStatement godoc
// @Summary Get the ledger statement
// @Description Replays the transaction log oldest first and returns the running balance after each entry
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.StatementResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to build statement"
// @Security BearerAuth
// @Router /ledger/statement [get]
func (h *ledgerHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, lines, err := h.ledgerService.Reconstruct(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to build statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatementResponse(account, lines))
}

// checkIntegrity godoc
// @Summary Check ledger integrity
// @Description Compares the stored balance with the balance replayed from the transaction log
// @Tags ledger
// @Produce json
// @Success 200 {object} domain.LedgerIntegrity
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to check integrity"
// @Security BearerAuth
// @Router /ledger/integrity [get]
func (h *ledgerHandler) checkIntegrity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.ledgerService.CheckIntegrity(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to check integrity")
		return
	}
	if !report.Consistent {
		logger.Warn("Ledger balance does not match transaction log",
			slog.String("stored", report.StoredBalance.String()),
			slog.String("replayed", report.ReplayedBalance.String()))
	}
	c.JSON(http.StatusOK, report)
}

// postTransaction godoc
// @Summary Post a manual ledger transaction
// @Description Records a credit or debit and applies it to the balance in one step
// @Tags ledger
// @Accept json
// @Produce json
// @Param transaction body dto.PostTransactionRequest true "Transaction details"
// @Success 201 {object} dto.PostTransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 422 {object} dto.ErrorResponse "Insufficient balance"
// @Failure 500 {object} dto.ErrorResponse "Failed to post transaction"
// @Security BearerAuth
// @Router /ledger/transactions [post]
func (h *ledgerHandler) postTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostTransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	txn, account, err := h.ledgerService.PostTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to post transaction")
		return
	}

	logger.Info("Ledger transaction posted", slog.String("transaction_id", txn.TransactionID), slog.String("type", string(txn.TransactionType)))
	c.JSON(http.StatusCreated, dto.PostTransactionResponse{
		Transaction: dto.ToTransactionResponse(txn),
		Account:     dto.ToLedgerAccountResponse(account),
	})
}
