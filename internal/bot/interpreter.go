// Package bot implements the WhatsApp chat interface: message parsing,
// command classification, expense auto-categorization and the command
// interpreter that executes commands against the store.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/hz-solucoes/financas/internal/auth"
	"github.com/hz-solucoes/financas/internal/models"
	"github.com/hz-solucoes/financas/internal/reports"
	"github.com/hz-solucoes/financas/internal/storage"
)

// Config carries the interpreter's tunables. All values are threaded
// explicitly; handlers never read ambient process state.
type Config struct {
	// DefaultNamePrefix prefixes the synthesized display name of lazily
	// created chat users.
	DefaultNamePrefix string

	// DefaultWaterAmount is the volume (ml) logged by "agua" without an
	// argument.
	DefaultWaterAmount float64

	// DailyWaterGoal is the target volume (ml) used for progress
	// reporting.
	DailyWaterGoal float64

	// RecentTransactionLimit caps the "transacoes" listing.
	RecentTransactionLimit int
}

// DefaultConfig returns the interpreter defaults used in production.
func DefaultConfig() Config {
	return Config{
		DefaultNamePrefix:      "Usuário",
		DefaultWaterAmount:     200,
		DailyWaterGoal:         2000,
		RecentTransactionLimit: 10,
	}
}

// errReply is the generic reply for handler failures. The precise error
// goes to the transport and the logs, never to the chat user.
const errReply = "❌ Não foi possível completar a operação. Tente novamente."

// Interpreter executes chat commands against the store.
type Interpreter struct {
	store  storage.Store
	cfg    Config
	logger *slog.Logger

	// now is replaceable in tests.
	now func() time.Time
}

// NewInterpreter creates an Interpreter with the given store and config.
func NewInterpreter(store storage.Store, cfg Config, logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interpreter{
		store:  store,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Handle processes one inbound message: it resolves (or lazily creates)
// the user behind senderID, classifies the message and runs the matching
// handler. The returned reply is always safe to show the user; a non-nil
// error means the transport should answer with a failure status.
func (i *Interpreter) Handle(ctx context.Context, senderID, text string) (string, *models.User, error) {
	user, err := i.resolveUser(ctx, senderID)
	if err != nil {
		return errReply, nil, fmt.Errorf("resolving user %q: %w", senderID, err)
	}

	command, args := Parse(text)
	cmd, err := Classify(command, args)
	if err != nil {
		var usage *UsageError
		if errors.As(err, &usage) {
			// Malformed arguments are a conversation, not a failure.
			return usage.Message, user, nil
		}
		return errReply, user, err
	}

	reply, err := i.dispatch(ctx, user, cmd)
	if err != nil {
		i.logger.Error("command handler failed",
			"user_id", user.ID,
			"command", command,
			"error", err,
		)
		return errReply, user, err
	}

	return reply, user, nil
}

// resolveUser finds the user behind a sender identifier, creating one on
// first contact. A concurrent first message can lose the insert race
// against the unique phone index; the loser recovers by re-fetching.
func (i *Interpreter) resolveUser(ctx context.Context, senderID string) (*models.User, error) {
	user, err := i.store.GetUserByPhone(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	placeholder, err := auth.PlaceholderHash()
	if err != nil {
		return nil, fmt.Errorf("generating placeholder credential: %w", err)
	}

	newUser := models.NewChatUser(senderID, i.synthesizeName(senderID), placeholder)
	if err := i.store.CreateUser(ctx, newUser); err != nil {
		if existing, ferr := i.store.GetUserByPhone(ctx, senderID); ferr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}

	user, err = i.store.GetUserByPhone(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %q vanished after creation", senderID)
	}

	i.logger.Info("chat user created", "user_id", user.ID)
	return user, nil
}

// synthesizeName derives a default display name from the identifier.
func (i *Interpreter) synthesizeName(senderID string) string {
	suffix := senderID
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return i.cfg.DefaultNamePrefix + " " + suffix
}

// dispatch runs the handler for a classified command. A panicking
// handler is converted into an error so one bad message cannot take the
// process down.
func (i *Interpreter) dispatch(ctx context.Context, user *models.User, cmd Command) (reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("command handler panicked: %v", r)
		}
	}()

	switch cmd := cmd.(type) {
	case AddExpense:
		return i.addExpense(ctx, user, cmd)
	case AddIncome:
		return i.addIncome(ctx, user, cmd)
	case ShowBalance:
		return i.showBalance(ctx, user)
	case ListTransactions:
		return i.listTransactions(ctx, user)
	case ShowShoppingList:
		return i.showShoppingList(ctx, user)
	case AddShoppingItem:
		return i.addShoppingItem(ctx, user, cmd)
	case LogWater:
		return i.logWater(ctx, user, cmd)
	case ShowHelp:
		return helpText, nil
	case Unknown:
		if cmd.Token == "" {
			return "Envie um comando. Digite *ajuda* para ver a lista.", nil
		}
		return fmt.Sprintf("Comando não reconhecido: %q. Digite *ajuda* para ver a lista.", cmd.Token), nil
	default:
		return "", fmt.Errorf("unhandled command type %T", cmd)
	}
}

func (i *Interpreter) addExpense(ctx context.Context, user *models.User, cmd AddExpense) (string, error) {
	category := Categorize(cmd.Description)

	tx := &models.Transaction{
		UserID:      user.ID,
		Kind:        models.KindExpense,
		Amount:      cmd.Amount,
		Description: cmd.Description,
		Category:    category,
	}
	if err := i.store.CreateTransaction(ctx, tx); err != nil {
		return "", err
	}

	return fmt.Sprintf("✅ Gasto registrado!\n💰 Valor: %s\n📝 Descrição: %s\n🏷️ Categoria: %s",
		formatMoney(cmd.Amount), cmd.Description, category), nil
}

func (i *Interpreter) addIncome(ctx context.Context, user *models.User, cmd AddIncome) (string, error) {
	tx := &models.Transaction{
		UserID:      user.ID,
		Kind:        models.KindIncome,
		Amount:      cmd.Amount,
		Description: cmd.Description,
	}
	if err := i.store.CreateTransaction(ctx, tx); err != nil {
		return "", err
	}

	return fmt.Sprintf("✅ Receita registrada!\n💰 Valor: %s\n📝 Descrição: %s",
		formatMoney(cmd.Amount), cmd.Description), nil
}

func (i *Interpreter) showBalance(ctx context.Context, user *models.User) (string, error) {
	from, to := reports.MonthWindow(i.now())
	window := storage.TransactionFilter{From: from, To: to}

	income, err := i.store.SumTransactions(ctx, user.ID, withKind(window, models.KindIncome))
	if err != nil {
		return "", err
	}
	expense, err := i.store.SumTransactions(ctx, user.ID, withKind(window, models.KindExpense))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("📊 Resumo do mês\n➕ Receitas: %s\n➖ Gastos: %s\n💰 Saldo: %s",
		formatMoney(income), formatMoney(expense), formatSignedMoney(income-expense)), nil
}

func (i *Interpreter) listTransactions(ctx context.Context, user *models.User) (string, error) {
	txs, err := i.store.ListTransactions(ctx, user.ID, storage.TransactionFilter{
		Limit: i.cfg.RecentTransactionLimit,
	})
	if err != nil {
		return "", err
	}
	if len(txs) == 0 {
		return "Nenhuma transação encontrada.", nil
	}

	var b strings.Builder
	b.WriteString("📋 Últimas transações:\n")
	for n, tx := range txs {
		sign := "➖"
		if tx.Kind == models.KindIncome {
			sign = "➕"
		}
		fmt.Fprintf(&b, "%d. %s %s - %s", n+1, sign, formatMoney(tx.Amount), tx.Description)
		if tx.Category != "" {
			fmt.Fprintf(&b, " (%s)", tx.Category)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func (i *Interpreter) showShoppingList(ctx context.Context, user *models.User) (string, error) {
	items, err := i.store.ListShoppingItems(ctx, user.ID)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "🛒 Sua lista de compras está vazia.", nil
	}

	var b strings.Builder
	b.WriteString("🛒 Lista de compras:\n")
	var pendingTotal float64
	for _, item := range items {
		mark := "⬜"
		if item.Status == models.StatusBought {
			mark = "✅"
		} else {
			pendingTotal += item.Price
		}
		fmt.Fprintf(&b, "%s %s", mark, item.Name)
		if item.Price > 0 {
			fmt.Fprintf(&b, " - %s", formatMoney(item.Price))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "💰 Total pendente: %s", formatMoney(pendingTotal))

	return b.String(), nil
}

func (i *Interpreter) addShoppingItem(ctx context.Context, user *models.User, cmd AddShoppingItem) (string, error) {
	item := &models.ShoppingItem{
		UserID: user.ID,
		Name:   cmd.Name,
		Status: models.StatusPending,
	}
	if cmd.HasPrice {
		item.Price = cmd.Price
	}
	if err := i.store.CreateShoppingItem(ctx, item); err != nil {
		return "", err
	}

	if cmd.HasPrice {
		return fmt.Sprintf("🛒 Item adicionado: %s (%s)", cmd.Name, formatMoney(cmd.Price)), nil
	}
	return fmt.Sprintf("🛒 Item adicionado: %s", cmd.Name), nil
}

func (i *Interpreter) logWater(ctx context.Context, user *models.User, cmd LogWater) (string, error) {
	amount := cmd.Amount
	if amount <= 0 {
		amount = i.cfg.DefaultWaterAmount
	}

	if err := i.store.CreateWaterIntake(ctx, &models.WaterIntake{
		UserID: user.ID,
		Amount: amount,
	}); err != nil {
		return "", err
	}

	from, to := reports.DayWindow(i.now())
	total, err := i.store.SumWaterIntake(ctx, user.ID, from, to)
	if err != nil {
		return "", err
	}

	percent := 0
	if i.cfg.DailyWaterGoal > 0 {
		percent = int(total / i.cfg.DailyWaterGoal * 100)
	}

	return fmt.Sprintf("💧 +%sml registrado!\nHoje: %sml de %sml (%d%%)",
		formatVolume(amount), formatVolume(total), formatVolume(i.cfg.DailyWaterGoal), percent), nil
}

const helpText = `🤖 Comandos disponíveis:
• gasto <valor> <descrição> - registra um gasto
• receita <valor> <descrição> - registra uma receita
• saldo - resumo do mês atual
• transacoes - últimas transações
• lista - mostra a lista de compras
• comprar <item> [preço] - adiciona item à lista
• agua [ml] - registra água (padrão 200ml)
• ajuda - mostra esta mensagem`

func withKind(f storage.TransactionFilter, kind models.TransactionKind) storage.TransactionFilter {
	f.Kind = kind
	return f
}

// formatMoney renders a value as "R$ 1234,56" (comma decimal separator).
func formatMoney(v float64) string {
	return "R$ " + strings.ReplaceAll(strconv.FormatFloat(v, 'f', 2, 64), ".", ",")
}

// formatSignedMoney prefixes positive balances with "+" so a surplus
// reads explicitly as one.
func formatSignedMoney(v float64) string {
	if v > 0 {
		return "+" + formatMoney(v)
	}
	if v < 0 {
		return "-" + formatMoney(-v)
	}
	return formatMoney(0)
}

// formatVolume renders milliliters without trailing zeros.
func formatVolume(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
