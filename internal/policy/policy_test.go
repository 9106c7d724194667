package policy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskflow-dev/taskflow-api/internal/models"
)

func member(userID uint64, role models.ProjectRole) models.ProjectMember {
	return models.ProjectMember{UserID: userID, Role: role}
}

func TestCanRead(t *testing.T) {
	members := []models.ProjectMember{
		member(1, models.RoleOwner),
		member(2, models.RoleAdmin),
		member(3, models.RoleMember),
	}

	require.True(t, CanRead(members, 1))
	require.True(t, CanRead(members, 2))
	require.True(t, CanRead(members, 3))
	require.False(t, CanRead(members, 4))
	require.False(t, CanRead(nil, 1))
}

func TestCanWrite(t *testing.T) {
	members := []models.ProjectMember{
		member(1, models.RoleOwner),
		member(2, models.RoleAdmin),
		member(3, models.RoleMember),
	}

	require.True(t, CanWrite(members, 1))
	require.True(t, CanWrite(members, 2))
	require.False(t, CanWrite(members, 3))
	require.False(t, CanWrite(members, 4))
}

func TestCanDelete(t *testing.T) {
	members := []models.ProjectMember{
		member(1, models.RoleOwner),
		member(2, models.RoleAdmin),
		member(3, models.RoleMember),
	}

	require.True(t, CanDelete(members, 1))
	require.False(t, CanDelete(members, 2))
	require.False(t, CanDelete(members, 3))
	require.False(t, CanDelete(members, 4))
}

// A creator who is no longer in the member list has no access at all.
func TestRemovedCreatorIsLockedOut(t *testing.T) {
	members := []models.ProjectMember{
		member(2, models.RoleOwner),
	}

	require.False(t, CanRead(members, 1))
	require.False(t, CanWrite(members, 1))
	require.False(t, CanDelete(members, 1))
}

// Property check over randomized membership lists: the three predicates
// must agree with a direct scan of the list for every user.
func TestPolicyRandomizedMemberships(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	roles := []models.ProjectRole{models.RoleOwner, models.RoleAdmin, models.RoleMember}

	for i := 0; i < 200; i++ {
		n := rng.Intn(8)
		members := make([]models.ProjectMember, 0, n)
		used := make(map[uint64]models.ProjectRole)
		for len(members) < n {
			userID := uint64(rng.Intn(10) + 1)
			if _, ok := used[userID]; ok {
				continue
			}
			role := roles[rng.Intn(len(roles))]
			used[userID] = role
			members = append(members, member(userID, role))
		}

		for userID := uint64(1); userID <= 12; userID++ {
			role, isMember := used[userID]

			require.Equal(t, isMember, CanRead(members, userID))
			require.Equal(t, isMember && (role == models.RoleOwner || role == models.RoleAdmin),
				CanWrite(members, userID))
			require.Equal(t, isMember && role == models.RoleOwner,
				CanDelete(members, userID))
		}
	}
}

func TestHasOwner(t *testing.T) {
	require.False(t, HasOwner(nil))
	require.False(t, HasOwner([]models.ProjectMember{
		member(1, models.RoleAdmin),
		member(2, models.RoleMember),
	}))
	require.True(t, HasOwner([]models.ProjectMember{
		member(1, models.RoleMember),
		member(2, models.RoleOwner),
	}))
}
