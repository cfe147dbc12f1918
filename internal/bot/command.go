package bot

import (
	"math"
	"strconv"
	"strings"
)

// Command is a classified chat command. The concrete types below form a
// closed set; handlers dispatch on the type, never on raw strings.
type Command interface {
	isCommand()
}

// AddExpense records an expense with an auto-assigned category.
type AddExpense struct {
	Amount      float64
	Description string
}

// AddIncome records an income. Incomes never carry a category.
type AddIncome struct {
	Amount      float64
	Description string
}

// ShowBalance summarizes the current month's incomes and expenses.
type ShowBalance struct{}

// ListTransactions lists the most recent transactions.
type ListTransactions struct{}

// ShowShoppingList lists the user's shopping items.
type ShowShoppingList struct{}

// AddShoppingItem adds an item, optionally with a trailing price.
type AddShoppingItem struct {
	Name     string
	Price    float64
	HasPrice bool
}

// LogWater records a water intake. A zero Amount means "use the
// configured default".
type LogWater struct {
	Amount float64
}

// ShowHelp replies with the command reference.
type ShowHelp struct{}

// Unknown wraps an unrecognized command token.
type Unknown struct {
	Token string
}

func (AddExpense) isCommand()       {}
func (AddIncome) isCommand()        {}
func (ShowBalance) isCommand()      {}
func (ListTransactions) isCommand() {}
func (ShowShoppingList) isCommand() {}
func (AddShoppingItem) isCommand()  {}
func (LogWater) isCommand()         {}
func (ShowHelp) isCommand()         {}
func (Unknown) isCommand()          {}

// UsageError is a recoverable argument error. Its message is the reply
// sent back to the user; it never surfaces as a transport failure.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// defaultDescription is used when an expense or income has no
// description words.
const defaultDescription = "Sem descrição"

// Classify turns a parsed (command, args) pair into a typed Command.
// Argument problems return a *UsageError with a user-facing message.
func Classify(command string, args []string) (Command, error) {
	switch command {
	case "gasto", "despesa":
		amount, description, err := amountAndDescription(args,
			"Uso: gasto <valor> <descrição>\nExemplo: gasto 50 compras no mercado")
		if err != nil {
			return nil, err
		}
		return AddExpense{Amount: amount, Description: description}, nil

	case "receita", "ganho":
		amount, description, err := amountAndDescription(args,
			"Uso: receita <valor> <descrição>\nExemplo: receita 1000 salário")
		if err != nil {
			return nil, err
		}
		return AddIncome{Amount: amount, Description: description}, nil

	case "saldo":
		return ShowBalance{}, nil

	case "transacoes", "despesas":
		return ListTransactions{}, nil

	case "lista", "itens", "compras":
		return ShowShoppingList{}, nil

	case "comprar", "item", "adicionar":
		return classifyShoppingItem(args)

	case "agua", "água":
		return classifyWater(args)

	case "ajuda", "help", "comandos":
		return ShowHelp{}, nil

	default:
		return Unknown{Token: command}, nil
	}
}

// CommandLabel maps a parsed command token to its canonical name.
// Unrecognized tokens collapse into "unknown" so user input cannot grow
// a metrics label set without bound.
func CommandLabel(command string) string {
	switch command {
	case "gasto", "despesa":
		return "gasto"
	case "receita", "ganho":
		return "receita"
	case "saldo":
		return "saldo"
	case "transacoes", "despesas":
		return "transacoes"
	case "lista", "itens", "compras":
		return "lista"
	case "comprar", "item", "adicionar":
		return "comprar"
	case "agua", "água":
		return "agua"
	case "ajuda", "help", "comandos":
		return "ajuda"
	default:
		return "unknown"
	}
}

// amountAndDescription parses the shared [amount, ...words] argument
// shape of the expense and income commands.
func amountAndDescription(args []string, usage string) (float64, string, error) {
	if len(args) == 0 {
		return 0, "", &UsageError{Message: usage}
	}

	amount, ok := parseAmount(args[0])
	if !ok {
		return 0, "", &UsageError{Message: "Valor inválido: " + args[0] + "\n" + usage}
	}

	description := strings.Join(args[1:], " ")
	if description == "" {
		description = defaultDescription
	}

	return amount, description, nil
}

func classifyShoppingItem(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &UsageError{Message: "Uso: comprar <item> [preço]\nExemplo: comprar leite 6,50"}
	}

	// A trailing numeric token is a price, but a lone numeric token is
	// still an item name.
	if len(args) > 1 {
		if price, ok := parseAmount(args[len(args)-1]); ok {
			return AddShoppingItem{
				Name:     strings.Join(args[:len(args)-1], " "),
				Price:    price,
				HasPrice: true,
			}, nil
		}
	}

	return AddShoppingItem{Name: strings.Join(args, " ")}, nil
}

func classifyWater(args []string) (Command, error) {
	if len(args) == 0 {
		return LogWater{}, nil
	}

	amount, ok := parseAmount(args[0])
	if !ok {
		return nil, &UsageError{Message: "Uso: agua [quantidade em ml]\nExemplo: agua 300"}
	}

	return LogWater{Amount: amount}, nil
}

// parseAmount parses a monetary or volume token, accepting a comma as
// the decimal separator. Non-finite and non-positive values are
// rejected rather than propagated.
func parseAmount(token string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
