package utils

import (
	"fmt"
	"strings"
)

// PurchaseRow is one aggregated entry of the shopping list.
type PurchaseRow struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RenderShoppingList formats aggregated purchases as the plain-text
// attachment body, one "Name - 150 g" line per ingredient.
func RenderShoppingList(rows []PurchaseRow) string {
	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s - %d %s\n", row.Name, row.Amount, row.MeasurementUnit)
	}
	return b.String()
}
