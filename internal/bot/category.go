package bot

import "strings"

// Expense categories assigned by Categorize.
const (
	CategoryFood      = "Alimentação"
	CategoryTransport = "Transporte"
	CategoryHealth    = "Saúde"
	CategoryBills     = "Contas"
	CategoryOther     = "Outros"
)

// categoryRule maps a keyword group to a category. Rules are evaluated
// in order; the first keyword found as a substring wins.
type categoryRule struct {
	keywords []string
	category string
}

// categoryRules is ordered. "mercado e conta de luz" resolves to
// Alimentação because the food rule comes before the bills rule.
var categoryRules = []categoryRule{
	{[]string{"mercado", "supermercado", "comida"}, CategoryFood},
	{[]string{"combustível", "gasolina", "posto"}, CategoryTransport},
	{[]string{"farmacia", "remédio", "medicamento"}, CategoryHealth},
	{[]string{"conta", "luz", "água", "internet"}, CategoryBills},
	{[]string{"restaurante", "lanche", "ifood"}, CategoryFood},
}

// Categorize maps a free-text expense description to a category label.
// Matching is case-insensitive substring containment; descriptions that
// match no rule fall back to Outros.
func Categorize(description string) string {
	desc := strings.ToLower(description)

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.category
			}
		}
	}

	return CategoryOther
}
