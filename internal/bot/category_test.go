package bot

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"market keyword", "Compras no mercado", CategoryFood},
		{"supermarket keyword", "supermercado extra", CategoryFood},
		{"food keyword", "comida pro fim de semana", CategoryFood},
		{"fuel keyword", "Gasolina Shell", CategoryTransport},
		{"gas station keyword", "posto ipiranga", CategoryTransport},
		{"pharmacy keyword", "farmacia do bairro", CategoryHealth},
		{"medicine keyword", "remédio pra dor", CategoryHealth},
		{"bill keyword", "conta de telefone", CategoryBills},
		{"electricity keyword", "luz de janeiro", CategoryBills},
		{"water bill keyword", "água de fevereiro", CategoryBills},
		{"internet keyword", "internet fibra", CategoryBills},
		{"restaurant keyword", "restaurante japonês", CategoryFood},
		{"snack keyword", "lanche da tarde", CategoryFood},
		{"delivery keyword", "ifood sexta", CategoryFood},
		{"no keyword", "presente de aniversário", CategoryOther},
		{"empty description", "", CategoryOther},
		{"keyword as substring", "hipermercadox", CategoryFood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.description); got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

func TestCategorizeRulePrecedence(t *testing.T) {
	// The food rule is evaluated before the health and bills rules, so a
	// description matching several rules resolves to the earliest one.
	tests := []struct {
		description string
		want        string
	}{
		{"Mercado e farmácia", CategoryFood},
		{"mercado e conta de luz", CategoryFood},
		{"gasolina e remédio", CategoryTransport},
	}

	for _, tt := range tests {
		if got := Categorize(tt.description); got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.description, got, tt.want)
		}
	}
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	if Categorize("MERCADO") != Categorize("mercado") {
		t.Error("Categorize should be case-insensitive")
	}
	if got := Categorize("MERCADO"); got != CategoryFood {
		t.Errorf("Categorize(\"MERCADO\") = %q, want %q", got, CategoryFood)
	}
}
