package bot

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hz-solucoes/financas/internal/models"
	"github.com/hz-solucoes/financas/internal/storage"
	"github.com/hz-solucoes/financas/internal/storage/sqlite"
)

const testSender = "5511999990000"

// setupInterpreter creates an interpreter over a fresh SQLite store.
func setupInterpreter(t *testing.T) (*Interpreter, storage.Store) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewInterpreter(store, DefaultConfig(), nil), store
}

func handle(t *testing.T, i *Interpreter, text string) string {
	t.Helper()
	reply, _, err := i.Handle(context.Background(), testSender, text)
	if err != nil {
		t.Fatalf("Handle(%q) error: %v", text, err)
	}
	return reply
}

func TestHandleExpenseCreatesUserAndTransaction(t *testing.T) {
	interp, store := setupInterpreter(t)
	ctx := context.Background()

	reply := handle(t, interp, "despesa 50 compras no mercado")

	user, err := store.GetUserByPhone(ctx, testSender)
	if err != nil {
		t.Fatalf("GetUserByPhone: %v", err)
	}
	if user == nil {
		t.Fatal("expected user to be created on first message")
	}
	if !strings.HasPrefix(user.Name, "Usuário ") {
		t.Errorf("synthesized name = %q, want 'Usuário ' prefix", user.Name)
	}

	txs, err := store.ListTransactions(ctx, user.ID, storage.TransactionFilter{})
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected exactly 1 transaction, got %d", len(txs))
	}

	tx := txs[0]
	if tx.Kind != models.KindExpense {
		t.Errorf("kind = %q, want expense", tx.Kind)
	}
	if tx.Amount != 50 {
		t.Errorf("amount = %v, want 50", tx.Amount)
	}
	if tx.Description != "compras no mercado" {
		t.Errorf("description = %q, want %q", tx.Description, "compras no mercado")
	}
	if tx.Category != CategoryFood {
		t.Errorf("category = %q, want %q", tx.Category, CategoryFood)
	}
	if tx.UserID != user.ID {
		t.Error("transaction not attributed to the resolved user")
	}

	for _, want := range []string{"R$ 50,00", "compras no mercado", CategoryFood} {
		if !strings.Contains(reply, want) {
			t.Errorf("reply %q missing %q", reply, want)
		}
	}
}

func TestHandleSecondMessageReusesUser(t *testing.T) {
	interp, store := setupInterpreter(t)
	ctx := context.Background()

	handle(t, interp, "gasto 10 lanche")
	handle(t, interp, "gasto 20 posto")

	user, err := store.GetUserByPhone(ctx, testSender)
	if err != nil || user == nil {
		t.Fatalf("GetUserByPhone: user=%v err=%v", user, err)
	}

	txs, err := store.ListTransactions(ctx, user.ID, storage.TransactionFilter{})
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(txs) != 2 {
		t.Errorf("expected 2 transactions for one user, got %d", len(txs))
	}
}

func TestHandleIncomeHasNoCategory(t *testing.T) {
	interp, store := setupInterpreter(t)
	ctx := context.Background()

	handle(t, interp, "receita 1000 salário do mercado")

	user, _ := store.GetUserByPhone(ctx, testSender)
	txs, err := store.ListTransactions(ctx, user.ID, storage.TransactionFilter{})
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	if txs[0].Kind != models.KindIncome {
		t.Errorf("kind = %q, want income", txs[0].Kind)
	}
	// The description mentions "mercado" but incomes are never categorized.
	if txs[0].Category != "" {
		t.Errorf("income category = %q, want empty", txs[0].Category)
	}
}

func TestHandleBalance(t *testing.T) {
	interp, _ := setupInterpreter(t)

	handle(t, interp, "receita 1000 salário")
	handle(t, interp, "gasto 300 mercado")

	reply := handle(t, interp, "saldo")

	for _, want := range []string{"R$ 1000,00", "R$ 300,00", "+R$ 700,00"} {
		if !strings.Contains(reply, want) {
			t.Errorf("balance reply %q missing %q", reply, want)
		}
	}
}

func TestHandleBalanceNegative(t *testing.T) {
	interp, _ := setupInterpreter(t)

	handle(t, interp, "receita 100 bico")
	handle(t, interp, "gasto 250 mercado")

	reply := handle(t, interp, "saldo")
	if !strings.Contains(reply, "-R$ 150,00") {
		t.Errorf("balance reply %q missing -R$ 150,00", reply)
	}
}

func TestHandleListTransactions(t *testing.T) {
	interp, _ := setupInterpreter(t)

	if reply := handle(t, interp, "transacoes"); !strings.Contains(reply, "Nenhuma transação") {
		t.Errorf("empty listing reply = %q", reply)
	}

	handle(t, interp, "gasto 50 mercado")
	handle(t, interp, "receita 100 bico")

	reply := handle(t, interp, "transacoes")
	if !strings.Contains(reply, "1.") || !strings.Contains(reply, "2.") {
		t.Errorf("listing %q is not numbered", reply)
	}
	if !strings.Contains(reply, "mercado") || !strings.Contains(reply, "bico") {
		t.Errorf("listing %q missing transactions", reply)
	}
}

func TestHandleListTransactionsLimit(t *testing.T) {
	interp, _ := setupInterpreter(t)

	for i := 0; i < 15; i++ {
		handle(t, interp, "gasto 1 lanche")
	}

	reply := handle(t, interp, "transacoes")
	if strings.Contains(reply, "11.") {
		t.Errorf("listing %q exceeds the 10-transaction limit", reply)
	}
	if !strings.Contains(reply, "10.") {
		t.Errorf("listing %q should include 10 entries", reply)
	}
}

func TestHandleUnknownCommand(t *testing.T) {
	interp, store := setupInterpreter(t)
	ctx := context.Background()

	reply := handle(t, interp, "xyz")
	if !strings.Contains(reply, "xyz") {
		t.Errorf("reply %q does not echo the unrecognized token", reply)
	}

	// User resolution is the only side effect.
	user, err := store.GetUserByPhone(ctx, testSender)
	if err != nil || user == nil {
		t.Fatalf("GetUserByPhone: user=%v err=%v", user, err)
	}
	txs, _ := store.ListTransactions(ctx, user.ID, storage.TransactionFilter{})
	if len(txs) != 0 {
		t.Errorf("unknown command created %d transactions", len(txs))
	}
}

func TestHandleWaterDefault(t *testing.T) {
	interp, store := setupInterpreter(t)
	ctx := context.Background()

	reply := handle(t, interp, "agua")
	if !strings.Contains(reply, "+200ml") {
		t.Errorf("reply %q missing default +200ml", reply)
	}
	if !strings.Contains(reply, "(10%)") {
		t.Errorf("reply %q missing 10%% progress against the 2000ml goal", reply)
	}

	user, _ := store.GetUserByPhone(ctx, testSender)
	total, err := store.SumWaterIntake(ctx, user.ID, 0, 1<<62)
	if err != nil {
		t.Fatalf("SumWaterIntake: %v", err)
	}
	if total != 200 {
		t.Errorf("logged %v ml, want exactly 200", total)
	}
}

func TestHandleWaterExplicitAmount(t *testing.T) {
	interp, _ := setupInterpreter(t)

	handle(t, interp, "agua 300")
	reply := handle(t, interp, "agua 300")
	if !strings.Contains(reply, "600ml") {
		t.Errorf("reply %q missing running total 600ml", reply)
	}
}

func TestHandleShoppingList(t *testing.T) {
	interp, _ := setupInterpreter(t)

	if reply := handle(t, interp, "lista"); !strings.Contains(reply, "vazia") {
		t.Errorf("empty list reply = %q", reply)
	}

	handle(t, interp, "comprar leite integral 6,50")
	handle(t, interp, "comprar arroz")

	reply := handle(t, interp, "lista")
	for _, want := range []string{"leite integral", "arroz", "R$ 6,50", "Total pendente"} {
		if !strings.Contains(reply, want) {
			t.Errorf("list reply %q missing %q", reply, want)
		}
	}
}

func TestHandleUsageErrorIsReplyNotFailure(t *testing.T) {
	interp, _ := setupInterpreter(t)

	reply, _, err := interp.Handle(context.Background(), testSender, "gasto abc mercado")
	if err != nil {
		t.Fatalf("usage problems must not be transport errors, got %v", err)
	}
	if !strings.Contains(reply, "Valor inválido") {
		t.Errorf("reply %q missing usage guidance", reply)
	}
}

func TestHandleHelp(t *testing.T) {
	interp, _ := setupInterpreter(t)

	for _, cmd := range []string{"ajuda", "help", "comandos"} {
		reply := handle(t, interp, cmd)
		if !strings.Contains(reply, "gasto") || !strings.Contains(reply, "agua") {
			t.Errorf("help reply for %q looks incomplete: %q", cmd, reply)
		}
	}
}
