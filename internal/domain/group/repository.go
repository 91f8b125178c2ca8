package group

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	// CreateGroup returns ErrCodeTaken when the invite code already exists.
	CreateGroup(ctx context.Context, group *Group) error
	// AddMember is a no-op when the membership already exists.
	AddMember(ctx context.Context, member *Membership) error
	GroupExists(ctx context.Context, groupID string) (bool, error)
	ListGroupIDsByUsername(ctx context.Context, username string) ([]string, error)
	HasMembership(ctx context.Context, username, groupID string) (bool, error)
}

// IdentityResolver maps a username to its user id.
type IdentityResolver interface {
	Resolve(ctx context.Context, username string) (int64, error)
}
