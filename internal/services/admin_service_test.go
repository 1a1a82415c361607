package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/anime_voting/internal/models"
	"github.com/anime_voting/internal/repositories"
)

func newAdminService(t *testing.T) (AdminService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewAdminService(
		repositories.NewGormUserRepository(db),
		repositories.NewGormCharacterRepository(db),
		repositories.NewGormVoteRepository(db),
	)
	return svc, db
}

func TestUpdateUserRole(t *testing.T) {
	svc, db := newAdminService(t)

	user := seedUser(t, db, "mikasa", models.RoleUser)

	require.NoError(t, svc.UpdateUserRole(user.ID, models.RoleAdmin))

	var updated models.User
	require.NoError(t, db.First(&updated, "id = ?", user.ID).Error)
	require.Equal(t, models.RoleAdmin, updated.Role)
}

func TestUpdateUserRoleInvalidRole(t *testing.T) {
	svc, db := newAdminService(t)

	user := seedUser(t, db, "mikasa", models.RoleUser)

	err := svc.UpdateUserRole(user.ID, "Moderator")
	require.ErrorIs(t, err, ErrInvalidRole)

	// 校验失败时存储的角色不变
	var unchanged models.User
	require.NoError(t, db.First(&unchanged, "id = ?", user.ID).Error)
	require.Equal(t, models.RoleUser, unchanged.Role)
}

func TestUpdateUserRoleNotFound(t *testing.T) {
	svc, _ := newAdminService(t)

	err := svc.UpdateUserRole("no-such-user", models.RoleAdmin)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUsersWithVoteCounts(t *testing.T) {
	svc, db := newAdminService(t)

	alice := seedUser(t, db, "alice", models.RoleAdmin)
	seedUser(t, db, "bob", models.RoleUser)
	ch := seedCharacter(t, db, "Mikasa", "Shingeki no Kyojin")
	seedVote(t, db, alice.ID, ch.ID)
	seedVote(t, db, alice.ID, ch.ID)

	users, err := svc.GetUsersWithVoteCounts()
	require.NoError(t, err)
	require.Len(t, users, 2)
	// 按用户名排序
	require.Equal(t, "alice", users[0].Username)
	require.Equal(t, int64(2), users[0].VoteCount)
	require.Equal(t, "bob", users[1].Username)
	require.Equal(t, int64(0), users[1].VoteCount)
}

func TestGetSystemStatsWithoutVotes(t *testing.T) {
	svc, db := newAdminService(t)

	seedUser(t, db, "admin1", models.RoleAdmin)
	seedUser(t, db, "user1", models.RoleUser)
	seedCharacter(t, db, "Mikasa", "Shingeki no Kyojin")

	stats, err := svc.GetSystemStats()
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.TotalUsers)
	require.Equal(t, int64(1), stats.TotalCharacters)
	require.Equal(t, int64(0), stats.TotalVotes)
	require.Equal(t, int64(1), stats.AdminUsers)
	require.Equal(t, int64(1), stats.RegularUsers)
	// 没有任何投票时为 null，而不是错误
	require.Nil(t, stats.MostVotedCharacter)
}

func TestGetSystemStatsMostVoted(t *testing.T) {
	svc, db := newAdminService(t)

	voter := seedUser(t, db, "voter1", models.RoleUser)
	a := seedCharacter(t, db, "Mikasa", "Shingeki no Kyojin")
	b := seedCharacter(t, db, "Eren", "Shingeki no Kyojin")
	seedVote(t, db, voter.ID, a.ID)
	seedVote(t, db, voter.ID, a.ID)
	seedVote(t, db, voter.ID, b.ID)

	stats, err := svc.GetSystemStats()
	require.NoError(t, err)
	require.Equal(t, int64(3), stats.TotalVotes)
	require.NotNil(t, stats.MostVotedCharacter)
	require.Equal(t, a.ID, stats.MostVotedCharacter.CharacterID)
	require.Equal(t, "Mikasa", stats.MostVotedCharacter.CharacterName)
	require.Equal(t, int64(2), stats.MostVotedCharacter.VoteCount)
}
