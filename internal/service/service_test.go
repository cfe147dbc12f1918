package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/hz-solucoes/financas/internal/auth"
	"github.com/hz-solucoes/financas/internal/bot"
	"github.com/hz-solucoes/financas/internal/middleware"
	"github.com/hz-solucoes/financas/internal/storage/sqlite"
	"github.com/hz-solucoes/financas/pkg/rpc"
)

const testUserID = "test-user"

// testAuthInterceptor returns a Connect interceptor that sets a fixed
// user ID in the context, standing in for RequireAuth.
func testAuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			ctx = context.WithValue(ctx, middleware.UserIDKey, testUserID)
			return next(ctx, req)
		}
	}
}

// setupTestServer mounts every service on an httptest server backed by
// a temp SQLite database. AuthService is mounted public; the rest get
// the test auth interceptor, as cmd/server does with RequireAuth.
func setupTestServer(t *testing.T) string {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	authenticator := auth.NewPasswordAuthenticator(store)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	public := []connect.HandlerOption{connect.WithCodec(rpc.Codec{})}
	protected := append(public, connect.WithInterceptors(testAuthInterceptor()))

	mux := http.NewServeMux()
	NewAuthService(authenticator, jwtManager, nil).Mount(mux, public...)
	NewTransactionService(store).Mount(mux, protected...)
	NewGoalService(store).Mount(mux, protected...)
	NewShoppingService(store).Mount(mux, protected...)
	NewCareService(store, bot.DefaultConfig()).Mount(mux, protected...)
	NewAccountService(store).Mount(mux, protected...)

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return server.URL
}

// call invokes one procedure with the JSON codec, the way the web front
// end does.
func call[Req, Res any](t *testing.T, serverURL, procedure string, msg *Req) (*connect.Response[Res], error) {
	t.Helper()
	client := connect.NewClient[Req, Res](
		http.DefaultClient,
		serverURL+procedure,
		connect.WithCodec(rpc.Codec{}),
	)
	return client.CallUnary(context.Background(), connect.NewRequest(msg))
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	connectErr, ok := err.(*connect.Error)
	if !ok {
		t.Fatalf("expected connect.Error, got %T: %v", err, err)
	}
	if connectErr.Code() != want {
		t.Errorf("expected %v, got %v", want, connectErr.Code())
	}
}

func TestRegisterAndLogin(t *testing.T) {
	url := setupTestServer(t)

	// Weak password is rejected before touching the store.
	_, err := call[rpc.RegisterRequest, rpc.RegisterResponse](t, url, rpc.AuthRegisterProcedure, &rpc.RegisterRequest{
		Email: "ana@example.com", Name: "Ana", Password: "short",
	})
	assertCode(t, err, connect.CodeInvalidArgument)

	resp, err := call[rpc.RegisterRequest, rpc.RegisterResponse](t, url, rpc.AuthRegisterProcedure, &rpc.RegisterRequest{
		Email: "ana@example.com", Name: "Ana", Password: "longenough",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.Msg.Token == "" {
		t.Error("expected non-empty token")
	}
	if resp.Msg.User.Email != "ana@example.com" || resp.Msg.User.ID == "" {
		t.Errorf("unexpected user in response: %+v", resp.Msg.User)
	}

	_, err = call[rpc.RegisterRequest, rpc.RegisterResponse](t, url, rpc.AuthRegisterProcedure, &rpc.RegisterRequest{
		Email: "ana@example.com", Name: "Ana Again", Password: "longenough",
	})
	assertCode(t, err, connect.CodeAlreadyExists)

	login, err := call[rpc.LoginRequest, rpc.LoginResponse](t, url, rpc.AuthLoginProcedure, &rpc.LoginRequest{
		Email: "ana@example.com", Password: "longenough",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.Msg.Token == "" {
		t.Error("expected non-empty token on login")
	}

	_, err = call[rpc.LoginRequest, rpc.LoginResponse](t, url, rpc.AuthLoginProcedure, &rpc.LoginRequest{
		Email: "ana@example.com", Password: "wrongpassword",
	})
	assertCode(t, err, connect.CodeUnauthenticated)
}

func TestCreateAndListTransactions(t *testing.T) {
	url := setupTestServer(t)

	_, err := call[rpc.CreateTransactionRequest, rpc.CreateTransactionResponse](t, url, rpc.TransactionCreateProcedure, &rpc.CreateTransactionRequest{
		Kind: "expense", Amount: 50, Description: "mercado", Category: "Alimentação", OccurredAt: 100,
	})
	if err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	// Income keeps no category even when the client sends one.
	income, err := call[rpc.CreateTransactionRequest, rpc.CreateTransactionResponse](t, url, rpc.TransactionCreateProcedure, &rpc.CreateTransactionRequest{
		Kind: "income", Amount: 1000, Description: "salário", Category: "Alimentação", OccurredAt: 200,
	})
	if err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}
	if income.Msg.Transaction.Category != "" {
		t.Errorf("income category = %q, want empty", income.Msg.Transaction.Category)
	}

	_, err = call[rpc.CreateTransactionRequest, rpc.CreateTransactionResponse](t, url, rpc.TransactionCreateProcedure, &rpc.CreateTransactionRequest{
		Kind: "loan", Amount: 10,
	})
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = call[rpc.CreateTransactionRequest, rpc.CreateTransactionResponse](t, url, rpc.TransactionCreateProcedure, &rpc.CreateTransactionRequest{
		Kind: "expense", Amount: -5,
	})
	assertCode(t, err, connect.CodeInvalidArgument)

	list, err := call[rpc.ListTransactionsRequest, rpc.ListTransactionsResponse](t, url, rpc.TransactionListProcedure, &rpc.ListTransactionsRequest{})
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(list.Msg.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(list.Msg.Transactions))
	}
	if list.Msg.Transactions[0].Description != "salário" {
		t.Errorf("expected newest first, got %q", list.Msg.Transactions[0].Description)
	}

	expenses, err := call[rpc.ListTransactionsRequest, rpc.ListTransactionsResponse](t, url, rpc.TransactionListProcedure, &rpc.ListTransactionsRequest{Kind: "expense"})
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(expenses.Msg.Transactions) != 1 {
		t.Errorf("expected 1 expense, got %d", len(expenses.Msg.Transactions))
	}
}

func TestGetMonthlySummary(t *testing.T) {
	url := setupTestServer(t)

	now := time.Now().Unix()
	seed := []rpc.CreateTransactionRequest{
		{Kind: "income", Amount: 3000, OccurredAt: now},
		{Kind: "expense", Amount: 800, Category: "Alimentação", OccurredAt: now},
		{Kind: "expense", Amount: 150, Category: "Contas", Fixed: true, OccurredAt: now},
	}
	for i := range seed {
		if _, err := call[rpc.CreateTransactionRequest, rpc.CreateTransactionResponse](t, url, rpc.TransactionCreateProcedure, &seed[i]); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	resp, err := call[rpc.GetMonthlySummaryRequest, rpc.GetMonthlySummaryResponse](t, url, rpc.TransactionSummaryProcedure, &rpc.GetMonthlySummaryRequest{})
	if err != nil {
		t.Fatalf("GetMonthlySummary failed: %v", err)
	}
	if resp.Msg.Income != 3000 {
		t.Errorf("Income = %v, want 3000", resp.Msg.Income)
	}
	if resp.Msg.Expense != 950 {
		t.Errorf("Expense = %v, want 950", resp.Msg.Expense)
	}
	if resp.Msg.Balance != 2050 {
		t.Errorf("Balance = %v, want 2050", resp.Msg.Balance)
	}
	if resp.Msg.FixedExpense != 150 {
		t.Errorf("FixedExpense = %v, want 150", resp.Msg.FixedExpense)
	}
	if resp.Msg.ByCategory["Alimentação"] != 800 {
		t.Errorf("ByCategory[Alimentação] = %v, want 800", resp.Msg.ByCategory["Alimentação"])
	}
}

func TestDeleteTransaction(t *testing.T) {
	url := setupTestServer(t)

	created, err := call[rpc.CreateTransactionRequest, rpc.CreateTransactionResponse](t, url, rpc.TransactionCreateProcedure, &rpc.CreateTransactionRequest{
		Kind: "expense", Amount: 25,
	})
	if err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	_, err = call[rpc.DeleteTransactionRequest, rpc.DeleteTransactionResponse](t, url, rpc.TransactionDeleteProcedure, &rpc.DeleteTransactionRequest{
		TransactionID: created.Msg.Transaction.ID,
	})
	if err != nil {
		t.Fatalf("DeleteTransaction failed: %v", err)
	}

	_, err = call[rpc.DeleteTransactionRequest, rpc.DeleteTransactionResponse](t, url, rpc.TransactionDeleteProcedure, &rpc.DeleteTransactionRequest{
		TransactionID: "nonexistent-id",
	})
	assertCode(t, err, connect.CodeNotFound)
}

func TestGoals(t *testing.T) {
	url := setupTestServer(t)

	created, err := call[rpc.CreateGoalRequest, rpc.CreateGoalResponse](t, url, rpc.GoalCreateProcedure, &rpc.CreateGoalRequest{
		Name: "Viagem", Target: 5000,
	})
	if err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	contrib, err := call[rpc.AddContributionRequest, rpc.AddContributionResponse](t, url, rpc.GoalContributeProcedure, &rpc.AddContributionRequest{
		GoalID: created.Msg.Goal.ID, Amount: 750,
	})
	if err != nil {
		t.Fatalf("AddContribution failed: %v", err)
	}
	if contrib.Msg.Goal.Saved != 750 {
		t.Errorf("Saved = %v, want 750", contrib.Msg.Goal.Saved)
	}
	if contrib.Msg.Goal.Progress != 0.15 {
		t.Errorf("Progress = %v, want 0.15", contrib.Msg.Goal.Progress)
	}

	_, err = call[rpc.AddContributionRequest, rpc.AddContributionResponse](t, url, rpc.GoalContributeProcedure, &rpc.AddContributionRequest{
		GoalID: "nonexistent-id", Amount: 10,
	})
	assertCode(t, err, connect.CodeNotFound)

	list, err := call[rpc.ListGoalsRequest, rpc.ListGoalsResponse](t, url, rpc.GoalListProcedure, &rpc.ListGoalsRequest{})
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(list.Msg.Goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(list.Msg.Goals))
	}

	_, err = call[rpc.DeleteGoalRequest, rpc.DeleteGoalResponse](t, url, rpc.GoalDeleteProcedure, &rpc.DeleteGoalRequest{
		GoalID: created.Msg.Goal.ID,
	})
	if err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}
}

func TestShoppingList(t *testing.T) {
	url := setupTestServer(t)

	leite, err := call[rpc.AddItemRequest, rpc.AddItemResponse](t, url, rpc.ShoppingAddProcedure, &rpc.AddItemRequest{
		Name: "leite", Price: 6.5,
	})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if _, err := call[rpc.AddItemRequest, rpc.AddItemResponse](t, url, rpc.ShoppingAddProcedure, &rpc.AddItemRequest{
		Name: "pão", Price: 8,
	}); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	_, err = call[rpc.SetItemStatusRequest, rpc.SetItemStatusResponse](t, url, rpc.ShoppingSetStatusProcedure, &rpc.SetItemStatusRequest{
		ItemID: leite.Msg.Item.ID, Status: "bought",
	})
	if err != nil {
		t.Fatalf("SetItemStatus failed: %v", err)
	}

	list, err := call[rpc.ListItemsRequest, rpc.ListItemsResponse](t, url, rpc.ShoppingListProcedure, &rpc.ListItemsRequest{})
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(list.Msg.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list.Msg.Items))
	}
	// Only the pending item counts toward the total.
	if list.Msg.PendingTotal != 8 {
		t.Errorf("PendingTotal = %v, want 8", list.Msg.PendingTotal)
	}

	_, err = call[rpc.SetItemStatusRequest, rpc.SetItemStatusResponse](t, url, rpc.ShoppingSetStatusProcedure, &rpc.SetItemStatusRequest{
		ItemID: leite.Msg.Item.ID, Status: "eaten",
	})
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = call[rpc.DeleteItemRequest, rpc.DeleteItemResponse](t, url, rpc.ShoppingDeleteProcedure, &rpc.DeleteItemRequest{
		ItemID: "nonexistent-id",
	})
	assertCode(t, err, connect.CodeNotFound)
}

func TestDailyCare(t *testing.T) {
	url := setupTestServer(t)

	task, err := call[rpc.CreateTaskRequest, rpc.CreateTaskResponse](t, url, rpc.CareCreateTaskProcedure, &rpc.CreateTaskRequest{
		Name: "tomar vitamina",
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if _, err := call[rpc.CreateTaskRequest, rpc.CreateTaskResponse](t, url, rpc.CareCreateTaskProcedure, &rpc.CreateTaskRequest{
		Name: "protetor solar",
	}); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	_, err = call[rpc.LogTaskRequest, rpc.LogTaskResponse](t, url, rpc.CareLogTaskProcedure, &rpc.LogTaskRequest{
		TaskID: task.Msg.Task.ID, Done: true,
	})
	if err != nil {
		t.Fatalf("LogTask failed: %v", err)
	}

	progress, err := call[rpc.GetDailyProgressRequest, rpc.GetDailyProgressResponse](t, url, rpc.CareDailyProgressProcedure, &rpc.GetDailyProgressRequest{})
	if err != nil {
		t.Fatalf("GetDailyProgress failed: %v", err)
	}
	if len(progress.Msg.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(progress.Msg.Tasks))
	}
	doneByName := map[string]bool{}
	for _, status := range progress.Msg.Tasks {
		doneByName[status.Task.Name] = status.Done
	}
	if !doneByName["tomar vitamina"] {
		t.Error("logged task should be done")
	}
	if doneByName["protetor solar"] {
		t.Error("unlogged task should not be done")
	}
}

func TestWater(t *testing.T) {
	url := setupTestServer(t)
	cfg := bot.DefaultConfig()

	// Zero amount logs the configured default.
	logged, err := call[rpc.LogWaterRequest, rpc.LogWaterResponse](t, url, rpc.CareLogWaterProcedure, &rpc.LogWaterRequest{})
	if err != nil {
		t.Fatalf("LogWater failed: %v", err)
	}
	if logged.Msg.Logged != cfg.DefaultWaterAmount {
		t.Errorf("Logged = %v, want %v", logged.Msg.Logged, cfg.DefaultWaterAmount)
	}
	if logged.Msg.DailyGoal != cfg.DailyWaterGoal {
		t.Errorf("DailyGoal = %v, want %v", logged.Msg.DailyGoal, cfg.DailyWaterGoal)
	}

	if _, err := call[rpc.LogWaterRequest, rpc.LogWaterResponse](t, url, rpc.CareLogWaterProcedure, &rpc.LogWaterRequest{Amount: 300}); err != nil {
		t.Fatalf("LogWater failed: %v", err)
	}

	today, err := call[rpc.GetWaterTodayRequest, rpc.GetWaterTodayResponse](t, url, rpc.CareWaterTodayProcedure, &rpc.GetWaterTodayRequest{})
	if err != nil {
		t.Fatalf("GetWaterToday failed: %v", err)
	}
	if want := cfg.DefaultWaterAmount + 300; today.Msg.TodayTotal != want {
		t.Errorf("TodayTotal = %v, want %v", today.Msg.TodayTotal, want)
	}
}

func TestAccounts(t *testing.T) {
	url := setupTestServer(t)

	created, err := call[rpc.CreateAccountRequest, rpc.CreateAccountResponse](t, url, rpc.AccountCreateProcedure, &rpc.CreateAccountRequest{
		Name: "Nubank", Balance: 100,
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	updated, err := call[rpc.UpdateBalanceRequest, rpc.UpdateBalanceResponse](t, url, rpc.AccountUpdateBalanceProcedure, &rpc.UpdateBalanceRequest{
		AccountID: created.Msg.Account.ID, Balance: 250.5,
	})
	if err != nil {
		t.Fatalf("UpdateBalance failed: %v", err)
	}
	if updated.Msg.Account.Balance != 250.5 {
		t.Errorf("Balance = %v, want 250.5", updated.Msg.Account.Balance)
	}

	list, err := call[rpc.ListAccountsRequest, rpc.ListAccountsResponse](t, url, rpc.AccountListProcedure, &rpc.ListAccountsRequest{})
	if err != nil {
		t.Fatalf("ListAccounts failed: %v", err)
	}
	if len(list.Msg.Accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(list.Msg.Accounts))
	}
}

func TestMissingAuthContext(t *testing.T) {
	// A protected service mounted without any auth interceptor must
	// refuse rather than scope queries to an empty user ID.
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	mux := http.NewServeMux()
	NewTransactionService(store).Mount(mux, connect.WithCodec(rpc.Codec{}))
	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	_, err = call[rpc.ListTransactionsRequest, rpc.ListTransactionsResponse](t, server.URL, rpc.TransactionListProcedure, &rpc.ListTransactionsRequest{})
	assertCode(t, err, connect.CodeUnauthenticated)
}
