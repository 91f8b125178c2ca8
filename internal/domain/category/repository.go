package category

import "context"

type Repository interface {
	// AddCategory ignores a duplicate (group, type, name).
	AddCategory(ctx context.Context, category *Category) error
	ListCategoryNames(ctx context.Context, groupID, categoryType string) ([]string, error)
}
