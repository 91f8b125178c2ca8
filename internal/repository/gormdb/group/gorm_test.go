package group_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shared-ledger/internal/apperr"
	domain "shared-ledger/internal/domain/group"
	userdomain "shared-ledger/internal/domain/user"
	repo "shared-ledger/internal/repository/gormdb/group"
	userrepo "shared-ledger/internal/repository/gormdb/user"
	"shared-ledger/internal/testutil"
)

func seedUser(t *testing.T, conn *gorm.DB, username string) int64 {
	t.Helper()
	user := userdomain.User{Username: username, PasswordHash: "x"}
	require.NoError(t, userrepo.NewGorm(conn).CreateUser(context.Background(), &user))
	return user.ID
}

func TestCreateGroupAndMembership(t *testing.T) {
	ctx := context.Background()
	conn := testutil.OpenSQLite(t)
	aliceID := seedUser(t, conn, "alice")
	r := repo.NewGorm(conn)

	err := r.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.CreateGroup(ctx, &domain.Group{GroupID: "AB12CD", CreatorID: aliceID}); err != nil {
			return err
		}
		return tx.AddMember(ctx, &domain.Membership{UserID: aliceID, GroupID: "AB12CD"})
	})
	require.NoError(t, err)

	exists, err := r.GroupExists(ctx, "AB12CD")
	require.NoError(t, err)
	assert.True(t, exists)

	ok, err := r.HasMembership(ctx, "alice", "AB12CD")
	require.NoError(t, err)
	assert.True(t, ok)

	ids, err := r.ListGroupIDsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"AB12CD"}, ids)

	err = r.CreateGroup(ctx, &domain.Group{GroupID: "AB12CD", CreatorID: aliceID})
	assert.ErrorIs(t, err, domain.ErrCodeTaken)
}

func TestAddMemberIsIdempotent(t *testing.T) {
	ctx := context.Background()
	conn := testutil.OpenSQLite(t)
	aliceID := seedUser(t, conn, "alice")
	bobID := seedUser(t, conn, "bob")
	r := repo.NewGorm(conn)

	require.NoError(t, r.CreateGroup(ctx, &domain.Group{GroupID: "AB12CD", CreatorID: aliceID}))
	require.NoError(t, r.AddMember(ctx, &domain.Membership{UserID: bobID, GroupID: "AB12CD"}))
	require.NoError(t, r.AddMember(ctx, &domain.Membership{UserID: bobID, GroupID: "AB12CD"}))

	var count int64
	require.NoError(t, conn.Table("memberships").Where("user_id = ?", bobID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	conn := testutil.OpenSQLite(t)
	aliceID := seedUser(t, conn, "alice")
	r := repo.NewGorm(conn)

	err := r.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.CreateGroup(ctx, &domain.Group{GroupID: "AB12CD", CreatorID: aliceID}); err != nil {
			return err
		}
		// unknown user violates the membership foreign key
		return tx.AddMember(ctx, &domain.Membership{UserID: aliceID + 100, GroupID: "AB12CD"})
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrUnavailable)

	exists, err := r.GroupExists(ctx, "AB12CD")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestHasMembershipForStranger(t *testing.T) {
	ctx := context.Background()
	conn := testutil.OpenSQLite(t)
	aliceID := seedUser(t, conn, "alice")
	seedUser(t, conn, "bob")
	r := repo.NewGorm(conn)
	require.NoError(t, r.CreateGroup(ctx, &domain.Group{GroupID: "AB12CD", CreatorID: aliceID}))

	ok, err := r.HasMembership(ctx, "bob", "AB12CD")
	require.NoError(t, err)
	assert.False(t, ok)

	ids, err := r.ListGroupIDsByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestServiceAgainstSQLite(t *testing.T) {
	ctx := context.Background()
	conn := testutil.OpenSQLite(t)
	users := userdomain.NewService(userrepo.NewGorm(conn), userdomain.BcryptHasher{Cost: 4})
	_, err := users.Register(ctx, "alice", "pw")
	require.NoError(t, err)
	_, err = users.Register(ctx, "bob", "pw")
	require.NoError(t, err)

	svc := domain.NewService(repo.NewGorm(conn), users, nil, domain.Config{})

	code, err := svc.CreateGroup(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, code, 6)

	require.NoError(t, svc.JoinGroup(ctx, "bob", code))
	require.NoError(t, svc.JoinGroup(ctx, "bob", code))

	groups, err := svc.ListGroups(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{code}, groups)

	err = svc.JoinGroup(ctx, "bob", "ZZZZZZ")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
