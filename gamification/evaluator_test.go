package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateThreshold(t *testing.T) {
	catalog := []Definition{
		{
			ID: 1, Name: "Idea Machine", Rarity: RarityCommon, Points: 50,
			Conditions: map[string]int{CounterIdeasSubmitted: 5},
		},
	}

	newly, gained := Evaluate(Counters{IdeasSubmitted: 5}, catalog, nil)
	require.Len(t, newly, 1)
	assert.Equal(t, uint(1), newly[0].ID)
	assert.Equal(t, 50, gained)

	newly, gained = Evaluate(Counters{IdeasSubmitted: 4}, catalog, nil)
	assert.Empty(t, newly)
	assert.Zero(t, gained)
}

func TestEvaluateAllConditionsMustHold(t *testing.T) {
	catalog := []Definition{
		{
			ID: 1, Name: "Community Pillar", Rarity: RarityEpic, Points: 200,
			Conditions: map[string]int{
				CounterIdeasSubmitted: 3,
				CounterCommentsMade:   10,
			},
		},
	}

	// One of two thresholds met.
	newly, _ := Evaluate(Counters{IdeasSubmitted: 3, CommentsMade: 9}, catalog, nil)
	assert.Empty(t, newly)

	newly, gained := Evaluate(Counters{IdeasSubmitted: 3, CommentsMade: 10}, catalog, nil)
	require.Len(t, newly, 1)
	assert.Equal(t, 200, gained)
}

func TestEvaluateReturnsAllQualifying(t *testing.T) {
	catalog := []Definition{
		{ID: 1, Name: "First Idea", Rarity: RarityCommon, Points: 25,
			Conditions: map[string]int{CounterIdeasSubmitted: 1}},
		{ID: 2, Name: "Serial Founder", Rarity: RarityRare, Points: 100,
			Conditions: map[string]int{CounterIdeasSubmitted: 10}},
		{ID: 3, Name: "Supporter", Rarity: RarityCommon, Points: 25,
			Conditions: map[string]int{CounterLikesGiven: 1}},
	}

	newly, gained := Evaluate(Counters{IdeasSubmitted: 10}, catalog, nil)
	require.Len(t, newly, 2)
	assert.Equal(t, 125, gained)
}

func TestEvaluateSkipsAlreadyUnlocked(t *testing.T) {
	catalog := []Definition{
		{ID: 1, Name: "First Idea", Rarity: RarityCommon, Points: 25,
			Conditions: map[string]int{CounterIdeasSubmitted: 1}},
	}
	counters := Counters{IdeasSubmitted: 3}

	newly, _ := Evaluate(counters, catalog, nil)
	require.Len(t, newly, 1)

	// Second pass with no intervening counter change yields nothing.
	newly, gained := Evaluate(counters, catalog, map[uint]bool{1: true})
	assert.Empty(t, newly)
	assert.Zero(t, gained)
}

func TestEvaluateEmptyConditionsNeverQualify(t *testing.T) {
	catalog := []Definition{
		{ID: 1, Name: "Staff Pick", Rarity: RarityLegendary, Points: 500, Conditions: map[string]int{}},
		{ID: 2, Name: "Founding Member", Rarity: RarityLegendary, Points: 500},
	}

	newly, gained := Evaluate(Counters{
		IdeasSubmitted: 1000, CommentsMade: 1000, LikesGiven: 1000,
		LikesReceived: 1000, LoginStreakDays: 1000,
	}, catalog, nil)
	assert.Empty(t, newly)
	assert.Zero(t, gained)
}

func TestValidateDefinition(t *testing.T) {
	good := Definition{ID: 1, Name: "ok", Rarity: RarityCommon, Points: 10,
		Conditions: map[string]int{CounterLikesGiven: 1}}
	assert.NoError(t, ValidateDefinition(good))

	cases := []struct {
		name string
		def  Definition
	}{
		{"zero points", Definition{ID: 2, Rarity: RarityCommon, Points: 0}},
		{"negative points", Definition{ID: 3, Rarity: RarityCommon, Points: -5}},
		{"bad rarity", Definition{ID: 4, Rarity: "mythic", Points: 10}},
		{"negative threshold", Definition{ID: 5, Rarity: RarityRare, Points: 10,
			Conditions: map[string]int{CounterLikesGiven: -1}}},
		{"unknown counter", Definition{ID: 6, Rarity: RarityRare, Points: 10,
			Conditions: map[string]int{"games_won": 3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDefinition(tc.def)
			require.Error(t, err)
			var catErr *CatalogError
			assert.ErrorAs(t, err, &catErr)
		})
	}
}

func TestValidateCatalogFiltersBadEntries(t *testing.T) {
	defs := []Definition{
		{ID: 1, Name: "ok", Rarity: RarityCommon, Points: 10,
			Conditions: map[string]int{CounterCommentsMade: 1}},
		{ID: 2, Name: "broken", Rarity: RarityCommon, Points: -1},
	}
	valid, errs := ValidateCatalog(defs)
	require.Len(t, valid, 1)
	assert.Equal(t, uint(1), valid[0].ID)
	assert.Len(t, errs, 1)
}
