package category

// Record and category types.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Category is a label scoped to a group and a record type.
type Category struct {
	ID      int64  `gorm:"primaryKey"`
	GroupID string `gorm:"column:group_id;not null;uniqueIndex:idx_categories_group_type_name"`
	Type    string `gorm:"not null;uniqueIndex:idx_categories_group_type_name"`
	Name    string `gorm:"not null;uniqueIndex:idx_categories_group_type_name"`
}

func ValidType(value string) bool {
	return value == TypeIncome || value == TypeExpense
}
