package bot

import (
	"errors"
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    []string
		want    Command
	}{
		{
			name:    "expense",
			command: "gasto",
			args:    []string{"50", "compras", "no", "mercado"},
			want:    AddExpense{Amount: 50, Description: "compras no mercado"},
		},
		{
			name:    "expense synonym",
			command: "despesa",
			args:    []string{"12,90", "lanche"},
			want:    AddExpense{Amount: 12.90, Description: "lanche"},
		},
		{
			name:    "expense without description",
			command: "gasto",
			args:    []string{"30"},
			want:    AddExpense{Amount: 30, Description: "Sem descrição"},
		},
		{
			name:    "income",
			command: "receita",
			args:    []string{"1000", "salário"},
			want:    AddIncome{Amount: 1000, Description: "salário"},
		},
		{
			name:    "income synonym",
			command: "ganho",
			args:    []string{"150"},
			want:    AddIncome{Amount: 150, Description: "Sem descrição"},
		},
		{
			name:    "balance",
			command: "saldo",
			want:    ShowBalance{},
		},
		{
			name:    "transactions",
			command: "transacoes",
			want:    ListTransactions{},
		},
		{
			name:    "transactions synonym despesas",
			command: "despesas",
			want:    ListTransactions{},
		},
		{
			name:    "shopping list",
			command: "lista",
			want:    ShowShoppingList{},
		},
		{
			name:    "shopping item with trailing price",
			command: "comprar",
			args:    []string{"leite", "integral", "6,50"},
			want:    AddShoppingItem{Name: "leite integral", Price: 6.50, HasPrice: true},
		},
		{
			name:    "shopping item without price",
			command: "adicionar",
			args:    []string{"arroz"},
			want:    AddShoppingItem{Name: "arroz"},
		},
		{
			name:    "lone numeric token still is a name",
			command: "comprar",
			args:    []string{"5"},
			want:    AddShoppingItem{Name: "5"},
		},
		{
			name:    "water with amount",
			command: "agua",
			args:    []string{"300"},
			want:    LogWater{Amount: 300},
		},
		{
			name:    "water accent synonym without amount",
			command: "água",
			want:    LogWater{},
		},
		{
			name:    "help",
			command: "ajuda",
			want:    ShowHelp{},
		},
		{
			name:    "unknown",
			command: "xyz",
			want:    Unknown{Token: "xyz"},
		},
		{
			name:    "empty command",
			command: "",
			want:    Unknown{Token: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.command, tt.args)
			if err != nil {
				t.Fatalf("Classify returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify(%q, %v) = %#v, want %#v", tt.command, tt.args, got, tt.want)
			}
		})
	}
}

func TestClassifyUsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    []string
	}{
		{"expense without args", "gasto", nil},
		{"expense with non-numeric amount", "gasto", []string{"abc", "mercado"}},
		{"expense with negative amount", "despesa", []string{"-10", "mercado"}},
		{"expense with zero amount", "gasto", []string{"0"}},
		{"income without args", "receita", nil},
		{"shopping item without args", "comprar", nil},
		{"water with non-numeric amount", "agua", []string{"muita"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.command, tt.args)
			var usage *UsageError
			if !errors.As(err, &usage) {
				t.Fatalf("Classify(%q, %v) error = %v, want *UsageError", tt.command, tt.args, err)
			}
			if usage.Message == "" {
				t.Error("usage error has empty message")
			}
		})
	}
}

func TestParseAmountCommaSeparator(t *testing.T) {
	tests := []struct {
		token string
		want  float64
		ok    bool
	}{
		{"50", 50, true},
		{"6,50", 6.50, true},
		{"6.50", 6.50, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseAmount(tt.token)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseAmount(%q) = (%v, %v), want (%v, %v)", tt.token, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCommandLabel(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"gasto", "gasto"},
		{"despesa", "gasto"},
		{"ganho", "receita"},
		{"despesas", "transacoes"},
		{"itens", "lista"},
		{"adicionar", "comprar"},
		{"água", "agua"},
		{"help", "ajuda"},
		{"xyz", "unknown"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		if got := CommandLabel(tt.command); got != tt.want {
			t.Errorf("CommandLabel(%q) = %q, want %q", tt.command, got, tt.want)
		}
	}
}
