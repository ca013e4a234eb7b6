package database

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/standup-bot/internal/domain"
	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandupRepo_Create(t *testing.T) {
	db := SetupTestDB(t)

	repo := newStandupRepo(db.conn)
	ctx := context.Background()

	t.Run("should create empty standup", func(t *testing.T) {
		standup := entity.NewStandup("G1", "C1")

		err := repo.Create(ctx, standup)

		require.NoError(t, err)
		assert.False(t, standup.CreatedAt.IsZero())

		found, err := repo.GetByID(ctx, "G1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "C1", found.ChannelID)
		assert.Empty(t, found.Members)
		assert.NotNil(t, found.Members)
		assert.Empty(t, found.Responses)
		assert.NotNil(t, found.Responses)
	})

	t.Run("should create standup with roster and responses", func(t *testing.T) {
		standup := &entity.Standup{
			ID:        "G2",
			ChannelID: "C2",
			Members:   []string{"u3", "u1", "u2"},
			Responses: map[string]string{"u1": "done"},
		}

		err := repo.Create(ctx, standup)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, "G2")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, []string{"u3", "u1", "u2"}, found.Members)
		assert.Equal(t, map[string]string{"u1": "done"}, found.Responses)
	})

	t.Run("should fail for duplicate tenant", func(t *testing.T) {
		err := repo.Create(ctx, entity.NewStandup("G1", "C9"))
		assert.Error(t, err)
	})
}

func TestStandupRepo_GetByID_NotFound(t *testing.T) {
	db := SetupTestDB(t)

	repo := newStandupRepo(db.conn)

	found, err := repo.GetByID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestStandupRepo_ListAndFind(t *testing.T) {
	db := SetupTestDB(t)

	dm := NewInstance(db)
	repo := dm.Standup()
	ctx := context.Background()

	SeedStandup(t, dm, "G1", "u1", "u2")
	SeedStandup(t, dm, "G2", "u2")
	SeedStandup(t, dm, "G3")

	t.Run("should list every tenant id", func(t *testing.T) {
		ids, err := repo.ListIDs(ctx)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"G1", "G2", "G3"}, ids)
	})

	t.Run("should find standups by member", func(t *testing.T) {
		standups, err := repo.FindByMember(ctx, "u2")

		require.NoError(t, err)
		require.Len(t, standups, 2)
		assert.Equal(t, "G1", standups[0].ID)
		assert.Equal(t, "G2", standups[1].ID)
	})

	t.Run("should return empty for unknown member", func(t *testing.T) {
		standups, err := repo.FindByMember(ctx, "nobody")

		require.NoError(t, err)
		assert.Empty(t, standups)
	})
}

func TestStandupRepo_Members(t *testing.T) {
	db := SetupTestDB(t)

	dm := NewInstance(db)
	repo := dm.Standup()
	ctx := context.Background()

	SeedStandup(t, dm, "G1", "u1", "u2", "u3")

	t.Run("should keep roster order", func(t *testing.T) {
		found, err := repo.GetByID(ctx, "G1")

		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u2", "u3"}, found.Members)
	})

	t.Run("should reject duplicate member", func(t *testing.T) {
		err := repo.AddMember(ctx, "G1", "u2")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrMemberExists))
	})

	t.Run("should reject member for unknown standup", func(t *testing.T) {
		err := repo.AddMember(ctx, "nope", "u1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrStandupNotFound))
	})

	t.Run("should remove member and append after the last position", func(t *testing.T) {
		removed, err := repo.RemoveMember(ctx, "G1", "u2")
		require.NoError(t, err)
		assert.True(t, removed)

		require.NoError(t, repo.AddMember(ctx, "G1", "u2"))

		found, err := repo.GetByID(ctx, "G1")
		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u3", "u2"}, found.Members)
	})

	t.Run("should report missing member on remove", func(t *testing.T) {
		removed, err := repo.RemoveMember(ctx, "G1", "ghost")

		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestStandupRepo_Responses(t *testing.T) {
	db := SetupTestDB(t)

	dm := NewInstance(db)
	repo := dm.Standup()
	ctx := context.Background()

	SeedStandup(t, dm, "G1", "u1", "u2")

	t.Run("should upsert response", func(t *testing.T) {
		require.NoError(t, repo.SetResponse(ctx, "G1", "u1", "first"))
		require.NoError(t, repo.SetResponse(ctx, "G1", "u1", "second"))

		found, err := repo.GetByID(ctx, "G1")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"u1": "second"}, found.Responses)
	})

	t.Run("should delete a single response", func(t *testing.T) {
		require.NoError(t, repo.SetResponse(ctx, "G1", "u2", "wip"))

		require.NoError(t, repo.DeleteResponse(ctx, "G1", "u1"))

		found, err := repo.GetByID(ctx, "G1")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"u2": "wip"}, found.Responses)
	})

	t.Run("should clear all responses", func(t *testing.T) {
		require.NoError(t, repo.ClearResponses(ctx, "G1"))

		found, err := repo.GetByID(ctx, "G1")
		require.NoError(t, err)
		assert.Empty(t, found.Responses)
		assert.Equal(t, []string{"u1", "u2"}, found.Members)
	})
}

func TestStandupRepo_Delete(t *testing.T) {
	db := SetupTestDB(t)

	dm := NewInstance(db)
	repo := dm.Standup()
	ctx := context.Background()

	SeedStandup(t, dm, "G1", "u1")
	require.NoError(t, repo.SetResponse(ctx, "G1", "u1", "done"))

	t.Run("should delete standup with roster and responses", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "G1"))

		found, err := repo.GetByID(ctx, "G1")
		require.NoError(t, err)
		assert.Nil(t, found)

		standups, err := repo.FindByMember(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, standups)
	})

	t.Run("should not fail for unknown standup", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, "G1"))
	})
}

func TestInstance_WithTransaction(t *testing.T) {
	db := SetupTestDB(t)

	dm := NewInstance(db)
	ctx := context.Background()

	t.Run("should commit on success", func(t *testing.T) {
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			return tx.Standup().Create(ctx, entity.NewStandup("G1", "C1"))
		})
		require.NoError(t, err)

		found, err := dm.Standup().GetByID(ctx, "G1")
		require.NoError(t, err)
		assert.NotNil(t, found)
	})

	t.Run("should rollback on error", func(t *testing.T) {
		boom := errors.New("boom")

		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.Standup().Create(ctx, entity.NewStandup("G2", "C2")); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		found, err := dm.Standup().GetByID(ctx, "G2")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
