package repository_test

import (
	"context"
	"testing"

	"github.com/mwaldhauser/zeitbot/internal/domain"
	"github.com/mwaldhauser/zeitbot/internal/repository"
	"github.com/mwaldhauser/zeitbot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteConversationRepo(database)
	ctx := context.Background()

	turns := []domain.ConversationTurn{
		testutil.NewTestTurn("Wie war meine Woche?", "Diese Woche: 14h", testutil.WithTurnIntent(domain.IntentWeekly)),
		testutil.NewTestTurn("Gib mir Tipps", "Alles läuft perfekt!", testutil.WithTurnIntent(domain.IntentRecommendations)),
		testutil.NewTestTurn("Hallo", "Ich bin hier um zu helfen!"),
	}
	require.NoError(t, repo.ReplaceAll(ctx, turns))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, turns, loaded)
}

func TestConversationRepo_ReplaceAllOverwritesSnapshot(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteConversationRepo(database)
	ctx := context.Background()

	first := []domain.ConversationTurn{
		testutil.NewTestTurn("eins", "antwort eins"),
		testutil.NewTestTurn("zwei", "antwort zwei"),
	}
	require.NoError(t, repo.ReplaceAll(ctx, first))

	second := []domain.ConversationTurn{
		testutil.NewTestTurn("drei", "antwort drei", testutil.WithTurnIntent(domain.IntentBreaks)),
	}
	require.NoError(t, repo.ReplaceAll(ctx, second))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, loaded, "the snapshot write replaces the whole log")
}

func TestConversationRepo_DeleteAll(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteConversationRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []domain.ConversationTurn{
		testutil.NewTestTurn("eins", "antwort"),
	}))
	require.NoError(t, repo.DeleteAll(ctx))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestConversationRepo_ReplaceAllEmptyClearsLog(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteConversationRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []domain.ConversationTurn{
		testutil.NewTestTurn("eins", "antwort"),
	}))
	require.NoError(t, repo.ReplaceAll(ctx, nil))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
