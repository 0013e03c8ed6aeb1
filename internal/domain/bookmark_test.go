package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bookmark Bookmark
		paperID  string
		want     bool
	}{
		{
			name:     "direct paper id field",
			bookmark: Bookmark{ID: "b1", PaperID: "42"},
			paperID:  "42",
			want:     true,
		},
		{
			name:     "nested paper object id",
			bookmark: Bookmark{ID: "b1", Paper: &PaperSummary{ID: "42"}},
			paperID:  "42",
			want:     true,
		},
		{
			name:     "whitespace is normalized on both sides",
			bookmark: Bookmark{ID: "b1", PaperID: " 42 "},
			paperID:  "42 ",
			want:     true,
		},
		{
			name:     "no match",
			bookmark: Bookmark{ID: "b1", PaperID: "7", Paper: &PaperSummary{ID: "7"}},
			paperID:  "42",
			want:     false,
		},
		{
			name:     "empty query id never matches",
			bookmark: Bookmark{ID: "b1", PaperID: ""},
			paperID:  "  ",
			want:     false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.bookmark.Matches(tc.paperID))
		})
	}
}

func TestTempBookmarkIDIsDistinguishable(t *testing.T) {
	t.Parallel()

	id := TempBookmarkID(" 42 ")
	assert.Equal(t, "temp-42", id)
	assert.True(t, Bookmark{ID: id}.Pending())
	assert.False(t, Bookmark{ID: "bm-42"}.Pending())
}

func TestInsertBookmarkIsIdempotent(t *testing.T) {
	t.Parallel()

	entry := Bookmark{ID: TempBookmarkID("42"), PaperID: "42"}

	once := InsertBookmark(nil, entry)
	require.Len(t, once, 1)

	twice := InsertBookmark(once, entry)
	assert.Len(t, twice, 1)
	assert.Equal(t, "temp-42", twice[0].ID)
}

func TestInsertBookmarkPrependsWithoutTouchingExistingEntries(t *testing.T) {
	t.Parallel()

	existing := []Bookmark{{ID: "b1", PaperID: "7"}}
	next := InsertBookmark(existing, Bookmark{ID: TempBookmarkID("42"), PaperID: "42"})

	require.Len(t, next, 2)
	assert.Equal(t, "42", next[0].PaperID)
	assert.Equal(t, "7", next[1].PaperID)
	assert.Equal(t, []Bookmark{{ID: "b1", PaperID: "7"}}, existing)
}

func TestRemoveBookmarkRemovesExactlyOneEntry(t *testing.T) {
	t.Parallel()

	list := []Bookmark{
		{ID: "b1", PaperID: "7"},
		{ID: "b2", Paper: &PaperSummary{ID: "42"}},
		{ID: "b3", PaperID: "42"},
	}

	next, found := RemoveBookmark(list, "42")
	require.True(t, found)
	require.Len(t, next, 2)
	assert.Equal(t, "b1", next[0].ID)
	assert.Equal(t, "b3", next[1].ID)
}

func TestRemoveBookmarkReportsMissingEntry(t *testing.T) {
	t.Parallel()

	next, found := RemoveBookmark([]Bookmark{{ID: "b1", PaperID: "7"}}, "42")
	assert.False(t, found)
	assert.Len(t, next, 1)
}

func TestCloneBookmarksDoesNotAliasEmbeddedSummaries(t *testing.T) {
	t.Parallel()

	original := []Bookmark{{
		ID:      "b1",
		PaperID: "42",
		Paper:   &PaperSummary{ID: "42", Title: "Paxos Made Live", Authors: []string{"Chandra"}},
	}}

	cloned := CloneBookmarks(original)
	require.Len(t, cloned, 1)

	cloned[0].Paper.Title = "changed"
	cloned[0].Paper.Authors[0] = "changed"

	assert.Equal(t, "Paxos Made Live", original[0].Paper.Title)
	assert.Equal(t, "Chandra", original[0].Paper.Authors[0])
}

func TestFindBookmark(t *testing.T) {
	t.Parallel()

	list := []Bookmark{
		{ID: "b1", PaperID: "7"},
		{ID: "b2", PaperID: "42", CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	got, ok := FindBookmark(list, "42")
	require.True(t, ok)
	assert.Equal(t, "b2", got.ID)

	_, ok = FindBookmark(list, "9000")
	assert.False(t, ok)
}
