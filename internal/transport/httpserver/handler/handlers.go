package handler

import (
	"context"

	categorydomain "shared-ledger/internal/domain/category"
	groupdomain "shared-ledger/internal/domain/group"
	ledgerdomain "shared-ledger/internal/domain/ledger"
	userdomain "shared-ledger/internal/domain/user"
	"shared-ledger/pkg/logger"
)

// Pinger reports whether storage is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handlers struct {
	Users      *userdomain.Service
	Groups     *groupdomain.Service
	Categories *categorydomain.Service
	Ledger     *ledgerdomain.Service
	db         Pinger
	log        logger.Logger
}

func New(users *userdomain.Service, groups *groupdomain.Service, categories *categorydomain.Service, ledger *ledgerdomain.Service, db Pinger, log logger.Logger) *Handlers {
	return &Handlers{
		Users:      users,
		Groups:     groups,
		Categories: categories,
		Ledger:     ledger,
		db:         db,
		log:        log,
	}
}
