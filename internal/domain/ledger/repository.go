package ledger

import "context"

type Repository interface {
	CreateRecord(ctx context.Context, record *Record) error
	// DeleteRecord is a no-op for an unknown id.
	DeleteRecord(ctx context.Context, id int64) error
	// SearchRecords returns the records of groupID whose time matches the LIKE
	// pattern, newest first with ties broken by id descending. An empty
	// recordType matches every type.
	SearchRecords(ctx context.Context, groupID, timePattern, recordType string) ([]RecordView, error)
}

type AccessChecker interface {
	HasAccess(ctx context.Context, username, groupID string) (bool, error)
}

type IdentityResolver interface {
	Resolve(ctx context.Context, username string) (int64, error)
}
