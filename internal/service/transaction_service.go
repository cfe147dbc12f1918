package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"

	"github.com/hz-solucoes/financas/internal/models"
	"github.com/hz-solucoes/financas/internal/reports"
	"github.com/hz-solucoes/financas/internal/storage"
	"github.com/hz-solucoes/financas/pkg/rpc"
)

// TransactionService implements the hz.v1.TransactionService RPC interface.
type TransactionService struct {
	store storage.Store
}

// NewTransactionService creates a new TransactionService with the given storage backend.
func NewTransactionService(store storage.Store) *TransactionService {
	return &TransactionService{store: store}
}

// Mount registers the service's procedures on the mux.
func (s *TransactionService) Mount(mux *http.ServeMux, opts ...connect.HandlerOption) {
	mux.Handle(rpc.TransactionCreateProcedure,
		connect.NewUnaryHandler(rpc.TransactionCreateProcedure, s.CreateTransaction, opts...))
	mux.Handle(rpc.TransactionListProcedure,
		connect.NewUnaryHandler(rpc.TransactionListProcedure, s.ListTransactions, opts...))
	mux.Handle(rpc.TransactionSummaryProcedure,
		connect.NewUnaryHandler(rpc.TransactionSummaryProcedure, s.GetMonthlySummary, opts...))
	mux.Handle(rpc.TransactionDeleteProcedure,
		connect.NewUnaryHandler(rpc.TransactionDeleteProcedure, s.DeleteTransaction, opts...))
}

// CreateTransaction records a new income or expense for the
// authenticated user.
func (s *TransactionService) CreateTransaction(ctx context.Context, req *connect.Request[rpc.CreateTransactionRequest]) (*connect.Response[rpc.CreateTransactionResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}

	kind := models.TransactionKind(req.Msg.Kind)
	if kind != models.KindIncome && kind != models.KindExpense {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("kind must be income or expense"))
	}
	if req.Msg.Amount <= 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("amount must be positive"))
	}

	tx := &models.Transaction{
		UserID:      userID,
		Kind:        kind,
		Amount:      req.Msg.Amount,
		Description: req.Msg.Description,
		Category:    req.Msg.Category,
		Fixed:       req.Msg.Fixed,
		OccurredAt:  req.Msg.OccurredAt,
	}
	// Incomes never carry a category.
	if kind == models.KindIncome {
		tx.Category = ""
	}

	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		slog.Error("CreateTransaction failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&rpc.CreateTransactionResponse{
		Transaction: toRPCTransaction(tx),
	}), nil
}

// ListTransactions returns the authenticated user's transactions,
// newest first, optionally filtered by kind and time window.
func (s *TransactionService) ListTransactions(ctx context.Context, req *connect.Request[rpc.ListTransactionsRequest]) (*connect.Response[rpc.ListTransactionsResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}

	txs, err := s.store.ListTransactions(ctx, userID, storage.TransactionFilter{
		Kind:  models.TransactionKind(req.Msg.Kind),
		From:  req.Msg.From,
		To:    req.Msg.To,
		Limit: req.Msg.Limit,
	})
	if err != nil {
		slog.Error("ListTransactions failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]rpc.Transaction, len(txs))
	for i := range txs {
		out[i] = toRPCTransaction(&txs[i])
	}

	return connect.NewResponse(&rpc.ListTransactionsResponse{Transactions: out}), nil
}

// GetMonthlySummary aggregates one calendar month of the authenticated
// user's transactions.
func (s *TransactionService) GetMonthlySummary(ctx context.Context, req *connect.Request[rpc.GetMonthlySummaryRequest]) (*connect.Response[rpc.GetMonthlySummaryResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}

	ref := time.Now()
	if req.Msg.Year != 0 && req.Msg.Month >= 1 && req.Msg.Month <= 12 {
		ref = time.Date(req.Msg.Year, time.Month(req.Msg.Month), 1, 0, 0, 0, 0, time.Local)
	}
	from, to := reports.MonthWindow(ref)

	txs, err := s.store.ListTransactions(ctx, userID, storage.TransactionFilter{From: from, To: to})
	if err != nil {
		slog.Error("GetMonthlySummary failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	summary := reports.Summarize(txs)
	return connect.NewResponse(&rpc.GetMonthlySummaryResponse{
		Income:       summary.Income,
		Expense:      summary.Expense,
		Balance:      summary.Balance,
		FixedExpense: summary.FixedExpense,
		ByCategory:   summary.ByCategory,
	}), nil
}

// DeleteTransaction removes one of the authenticated user's transactions.
func (s *TransactionService) DeleteTransaction(ctx context.Context, req *connect.Request[rpc.DeleteTransactionRequest]) (*connect.Response[rpc.DeleteTransactionResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.TransactionID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("transaction_id required"))
	}

	if err := s.store.DeleteTransaction(ctx, userID, req.Msg.TransactionID); err != nil {
		slog.Error("DeleteTransaction failed", "user_id", userID, "transaction_id", req.Msg.TransactionID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	return connect.NewResponse(&rpc.DeleteTransactionResponse{}), nil
}

func toRPCTransaction(tx *models.Transaction) rpc.Transaction {
	return rpc.Transaction{
		ID:          tx.ID,
		Kind:        string(tx.Kind),
		Amount:      tx.Amount,
		Description: tx.Description,
		Category:    tx.Category,
		Fixed:       tx.Fixed,
		OccurredAt:  tx.OccurredAt,
		CreatedAt:   tx.CreatedAt,
	}
}
