package domain

import "strings"

// Paper is one catalog entry as served by the remote paper API.
type Paper struct {
	ID            string
	Title         string
	Authors       []string
	Abstract      string
	Venue         string
	Year          int
	URL           string
	CitationCount int
	BookmarkCount int
}

// PaperSummary is the trimmed copy of a paper that bookmark rows may embed.
// Depending on which endpoint produced a row, the paper id lives either in
// Bookmark.PaperID or in here.
type PaperSummary struct {
	ID      string
	Title   string
	Authors []string
	Venue   string
	Year    int
}

// NormalizePaperID returns the canonical string form of a paper identifier.
// The API serves ids as JSON strings on some endpoints and numbers on others;
// every decode path and every equality check must go through this function.
func NormalizePaperID(raw string) string {
	return strings.TrimSpace(raw)
}

func (p Paper) Summary() PaperSummary {
	return PaperSummary{
		ID:      p.ID,
		Title:   p.Title,
		Authors: append([]string(nil), p.Authors...),
		Venue:   p.Venue,
		Year:    p.Year,
	}
}
