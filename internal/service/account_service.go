package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/hz-solucoes/financas/internal/models"
	"github.com/hz-solucoes/financas/internal/storage"
	"github.com/hz-solucoes/financas/pkg/rpc"
)

// AccountService implements the hz.v1.AccountService RPC interface.
type AccountService struct {
	store storage.Store
}

// NewAccountService creates a new AccountService with the given storage backend.
func NewAccountService(store storage.Store) *AccountService {
	return &AccountService{store: store}
}

// Mount registers the service's procedures on the mux.
func (s *AccountService) Mount(mux *http.ServeMux, opts ...connect.HandlerOption) {
	mux.Handle(rpc.AccountCreateProcedure,
		connect.NewUnaryHandler(rpc.AccountCreateProcedure, s.CreateAccount, opts...))
	mux.Handle(rpc.AccountListProcedure,
		connect.NewUnaryHandler(rpc.AccountListProcedure, s.ListAccounts, opts...))
	mux.Handle(rpc.AccountUpdateBalanceProcedure,
		connect.NewUnaryHandler(rpc.AccountUpdateBalanceProcedure, s.UpdateBalance, opts...))
}

// CreateAccount creates a bank account for the authenticated user.
func (s *AccountService) CreateAccount(ctx context.Context, req *connect.Request[rpc.CreateAccountRequest]) (*connect.Response[rpc.CreateAccountResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}

	account := &models.Account{
		UserID:  userID,
		Name:    req.Msg.Name,
		Balance: req.Msg.Balance,
	}
	if err := s.store.CreateAccount(ctx, account); err != nil {
		slog.Error("CreateAccount failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&rpc.CreateAccountResponse{Account: toRPCAccount(account)}), nil
}

// ListAccounts returns the authenticated user's accounts.
func (s *AccountService) ListAccounts(ctx context.Context, req *connect.Request[rpc.ListAccountsRequest]) (*connect.Response[rpc.ListAccountsResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}

	accounts, err := s.store.ListAccounts(ctx, userID)
	if err != nil {
		slog.Error("ListAccounts failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]rpc.Account, len(accounts))
	for i := range accounts {
		out[i] = toRPCAccount(&accounts[i])
	}

	return connect.NewResponse(&rpc.ListAccountsResponse{Accounts: out}), nil
}

// UpdateBalance sets an account's balance.
func (s *AccountService) UpdateBalance(ctx context.Context, req *connect.Request[rpc.UpdateBalanceRequest]) (*connect.Response[rpc.UpdateBalanceResponse], error) {
	userID, err := authedUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.AccountID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("account_id required"))
	}

	account, err := s.store.UpdateAccountBalance(ctx, userID, req.Msg.AccountID, req.Msg.Balance)
	if err != nil {
		slog.Error("UpdateBalance failed", "user_id", userID, "account_id", req.Msg.AccountID, "error", err)
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	return connect.NewResponse(&rpc.UpdateBalanceResponse{Account: toRPCAccount(account)}), nil
}

func toRPCAccount(account *models.Account) rpc.Account {
	return rpc.Account{
		ID:        account.ID,
		Name:      account.Name,
		Balance:   account.Balance,
		CreatedAt: account.CreatedAt,
	}
}
