package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory CounterStore keeping level consistent with XP.
type fakeStore struct {
	counters  map[uint]Counters
	lastLogin map[uint]time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		counters:  make(map[uint]Counters),
		lastLogin: make(map[uint]time.Time),
	}
}

func (s *fakeStore) Get(userID uint) (Counters, error) {
	c := s.counters[userID]
	if c.Level == 0 {
		c.Level = 1
	}
	return c, nil
}

func (s *fakeStore) Increment(userID uint, counter string, delta int) error {
	c := s.counters[userID]
	switch counter {
	case CounterIdeasSubmitted:
		c.IdeasSubmitted += delta
	case CounterCommentsMade:
		c.CommentsMade += delta
	case CounterLikesGiven:
		c.LikesGiven += delta
	case CounterLikesReceived:
		c.LikesReceived += delta
	}
	s.counters[userID] = c
	return nil
}

func (s *fakeStore) addXP(userID uint, points int) {
	c := s.counters[userID]
	c.TotalExperience += points
	c.Level, _ = LevelOf(c.TotalExperience)
	s.counters[userID] = c
}

func (s *fakeStore) StartLoginDay(userID uint, now time.Time) (StreakUpdate, error) {
	c := s.counters[userID]
	update := NextStreak(s.lastLogin[userID], c.LoginStreakDays, now)
	if update.Changed {
		c.LoginStreakDays = update.StreakDays
		s.counters[userID] = c
		s.lastLogin[userID] = now
		s.addXP(userID, update.BonusXP)
	}
	return update, nil
}

// fakeLedger records unlocks and applies XP through the store, mimicking
// the transactional contract. raceLost forces the already-present path.
type fakeLedger struct {
	store    *fakeStore
	unlocked map[uint]map[uint]bool
	raceLost bool
}

func newFakeLedger(store *fakeStore) *fakeLedger {
	return &fakeLedger{store: store, unlocked: make(map[uint]map[uint]bool)}
}

func (l *fakeLedger) UnlockedIDs(userID uint) (map[uint]bool, error) {
	ids := make(map[uint]bool, len(l.unlocked[userID]))
	for id := range l.unlocked[userID] {
		ids[id] = true
	}
	return ids, nil
}

func (l *fakeLedger) TryInsertUnlock(userID uint, def Definition, _ time.Time) (bool, error) {
	if l.raceLost || l.unlocked[userID][def.ID] {
		return false, nil
	}
	if l.unlocked[userID] == nil {
		l.unlocked[userID] = make(map[uint]bool)
	}
	l.unlocked[userID][def.ID] = true
	l.store.addXP(userID, def.Points)
	return true, nil
}

type fakeNotifier struct {
	events []Definition
}

func (n *fakeNotifier) Notify(_ uint, def Definition) {
	n.events = append(n.events, def)
}

func testCatalog() []Definition {
	return []Definition{
		{ID: 1, Name: "First Idea", Rarity: RarityCommon, Points: 25,
			Conditions: map[string]int{CounterIdeasSubmitted: 1}},
		{ID: 2, Name: "Idea Machine", Rarity: RarityRare, Points: 50,
			Conditions: map[string]int{CounterIdeasSubmitted: 5}},
		{ID: 3, Name: "Week Streak", Rarity: RarityRare, Points: 100,
			Conditions: map[string]int{CounterLoginStreak: 7}},
	}
}

func TestEngineRecordActivityGrantsAndNotifies(t *testing.T) {
	store := newFakeStore()
	ledger := newFakeLedger(store)
	notifier := &fakeNotifier{}
	engine := NewEngine(store, ledger, notifier, testCatalog())

	result, err := engine.RecordActivity(7, CounterIdeasSubmitted, 1)
	require.NoError(t, err)
	require.Len(t, result.NewlyUnlocked, 1)
	assert.Equal(t, "First Idea", result.NewlyUnlocked[0].Name)
	assert.Equal(t, 25, result.ExperienceGained)
	assert.Equal(t, 25, result.Counters.TotalExperience)
	assert.Len(t, notifier.events, 1)

	// Same counters, second evaluation: nothing new.
	result, err = engine.RecordActivity(7, CounterLikesGiven, 1)
	require.NoError(t, err)
	assert.Empty(t, result.NewlyUnlocked)
	assert.Len(t, notifier.events, 1)
}

func TestEngineRecordActivityRejectsBadInput(t *testing.T) {
	engine := NewEngine(newFakeStore(), newFakeLedger(newFakeStore()), nil, nil)

	_, err := engine.RecordActivity(1, CounterIdeasSubmitted, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.RecordActivity(1, "level", 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEngineLostRaceGrantsNothing(t *testing.T) {
	store := newFakeStore()
	ledger := newFakeLedger(store)
	notifier := &fakeNotifier{}
	engine := NewEngine(store, ledger, notifier, testCatalog())
	ledger.raceLost = true

	result, err := engine.RecordActivity(7, CounterIdeasSubmitted, 1)
	require.NoError(t, err)
	assert.Empty(t, result.NewlyUnlocked)
	assert.Zero(t, result.ExperienceGained)
	assert.Zero(t, result.Counters.TotalExperience)
	assert.Empty(t, notifier.events)
}

func TestEngineStartSessionBonusOncePerDay(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, newFakeLedger(store), &fakeNotifier{}, testCatalog())

	first, err := engine.StartSession(7, day(1))
	require.NoError(t, err)
	assert.Equal(t, 1, first.StreakDays)
	assert.Equal(t, LoginBonusXP, first.BonusXP)

	// Second tab, same day: no second grant.
	second, err := engine.StartSession(7, day(1).Add(2*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, second.BonusXP)

	counters, err := store.Get(7)
	require.NoError(t, err)
	assert.Equal(t, LoginBonusXP, counters.TotalExperience)
}

func TestEngineStreakUnlocksAchievement(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store, newFakeLedger(store), &fakeNotifier{}, testCatalog())

	var last SessionResult
	for i := 1; i <= 7; i++ {
		var err error
		last, err = engine.StartSession(7, day(i))
		require.NoError(t, err)
	}

	assert.Equal(t, 7, last.StreakDays)
	require.Len(t, last.NewlyUnlocked, 1)
	assert.Equal(t, "Week Streak", last.NewlyUnlocked[0].Name)
}

func TestEngineGrantNotifiesOnFirstInsertOnly(t *testing.T) {
	store := newFakeStore()
	ledger := newFakeLedger(store)
	notifier := &fakeNotifier{}
	engine := NewEngine(store, ledger, notifier, testCatalog())

	def := Definition{ID: 10, Name: "Founding Member", Rarity: RarityLegendary, Points: 200}

	granted, err := engine.Grant(7, def, day(1))
	require.NoError(t, err)
	assert.True(t, granted)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, "Founding Member", notifier.events[0].Name)

	counters, err := store.Get(7)
	require.NoError(t, err)
	assert.Equal(t, 200, counters.TotalExperience)

	// Granting the same achievement again is a no-op, no second notification.
	granted, err = engine.Grant(7, def, day(2))
	require.NoError(t, err)
	assert.False(t, granted)
	assert.Len(t, notifier.events, 1)
}

func TestNewEngineDropsMalformedEntries(t *testing.T) {
	catalog := append(testCatalog(), Definition{ID: 99, Name: "broken", Rarity: "mythic", Points: 10})
	engine := NewEngine(newFakeStore(), newFakeLedger(newFakeStore()), nil, catalog)
	assert.Len(t, engine.Catalog(), 3)
}
