package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePaperID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain id untouched", raw: "42", want: "42"},
		{name: "surrounding whitespace trimmed", raw: "  42\n", want: "42"},
		{name: "non-numeric ids pass through", raw: "arXiv:2203.00001", want: "arXiv:2203.00001"},
		{name: "empty stays empty", raw: "   ", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, NormalizePaperID(tc.raw))
		})
	}
}

func TestSessionIsAuthenticated(t *testing.T) {
	t.Parallel()

	assert.True(t, Session{Token: "tok-1"}.IsAuthenticated())
	assert.False(t, Session{}.IsAuthenticated())
	assert.False(t, Session{Token: "   "}.IsAuthenticated())
	assert.False(t, Session{DisplayName: "Jiyeong"}.IsAuthenticated())
}

func TestPaperSummaryCopiesAuthors(t *testing.T) {
	t.Parallel()

	paper := Paper{ID: "42", Title: "Raft", Authors: []string{"Ongaro", "Ousterhout"}}
	summary := paper.Summary()

	summary.Authors[0] = "changed"
	assert.Equal(t, "Ongaro", paper.Authors[0])
}

func TestPushRecentlyViewedDeduplicatesAndBounds(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	views := []PaperView{
		{PaperID: "1", Title: "one", ViewedAt: now.Add(-2 * time.Minute)},
		{PaperID: "2", Title: "two", ViewedAt: now.Add(-1 * time.Minute)},
	}

	views = PushRecentlyViewed(views, PaperView{PaperID: "1", Title: "one", ViewedAt: now}, 25)
	require.Len(t, views, 2)
	assert.Equal(t, "1", views[0].PaperID)
	assert.True(t, views[0].ViewedAt.Equal(now))
	assert.Equal(t, "2", views[1].PaperID)
}

func TestPushRecentlyViewedTrimsToLimit(t *testing.T) {
	t.Parallel()

	var views []PaperView
	for i := 0; i < 4; i++ {
		views = PushRecentlyViewed(views, PaperView{PaperID: string(rune('a' + i))}, 3)
	}

	require.Len(t, views, 3)
	assert.Equal(t, "d", views[0].PaperID)
	assert.Equal(t, "b", views[2].PaperID)
}

func TestPushRecentlyViewedNonPositiveLimitFallsBack(t *testing.T) {
	t.Parallel()

	views := PushRecentlyViewed(nil, PaperView{PaperID: "42"}, 0)
	assert.Len(t, views, 1)
}
