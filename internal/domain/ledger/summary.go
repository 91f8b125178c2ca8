package ledger

import (
	"sort"

	"shared-ledger/internal/domain/category"
)

// Summarize sums amounts by type over records. Types other than income and
// expense do not count.
func Summarize(records []RecordView) Summary {
	var summary Summary
	for _, record := range records {
		switch record.Type {
		case category.TypeIncome:
			summary.Income += record.Amount
		case category.TypeExpense:
			summary.Expense += record.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expense
	return summary
}

// ByCategory totals amounts per category, split by type, largest first.
func ByCategory(records []RecordView) Analytics {
	income := make(map[string]float64)
	expense := make(map[string]float64)
	for _, record := range records {
		switch record.Type {
		case category.TypeIncome:
			income[record.Category] += record.Amount
		case category.TypeExpense:
			expense[record.Category] += record.Amount
		}
	}

	return Analytics{
		Income:  sortedTotals(income),
		Expense: sortedTotals(expense),
	}
}

func sortedTotals(totals map[string]float64) []CategoryTotal {
	result := make([]CategoryTotal, 0, len(totals))
	for name, total := range totals {
		result = append(result, CategoryTotal{Category: name, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Category < result[j].Category
	})
	return result
}
