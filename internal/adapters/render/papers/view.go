package papers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/JiYeong0127/paperdeck/internal/domain"
)

type RenderOptions struct {
	// Now anchors relative timestamps; zero falls back to absolute times.
	Now time.Time
}

// RenderSearchPage renders one page of search results.
func RenderSearchPage(page domain.SearchPage, query domain.SearchQuery) (string, error) {
	return run(func(s styles) string {
		return searchPageView(page, query, s)
	})
}

// RenderPaper renders the full paper detail.
func RenderPaper(paper domain.Paper) (string, error) {
	return run(func(s styles) string {
		return paperView(paper, s)
	})
}

// RenderBookmarks renders the saved bookmark list.
func RenderBookmarks(list []domain.Bookmark, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return bookmarksView(list, opts, s)
	})
}

// RenderHistory renders the recently-viewed list.
func RenderHistory(views []domain.PaperView, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return historyView(views, opts, s)
	})
}

func searchPageView(page domain.SearchPage, query domain.SearchQuery, s styles) string {
	lines := []string{
		s.title.Render("Paper search"),
		s.header.Render(searchHeader(page, query)),
	}

	if len(page.Papers) == 0 {
		lines = append(lines, s.empty.Render("No papers matched."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, paper := range page.Papers {
		lines = append(lines, s.section.Render(paperRow(paper, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func searchHeader(page domain.SearchPage, query domain.SearchQuery) string {
	noun := "papers"
	if page.Total == 1 {
		noun = "paper"
	}
	label := fmt.Sprintf("%d %s for %q", page.Total, noun, query.Text)

	if page.PerPage > 0 {
		totalPages := (page.Total + page.PerPage - 1) / page.PerPage
		if totalPages > 1 {
			label += fmt.Sprintf(" (page %d of %d)", page.Page, totalPages)
		}
	}

	return label
}

func paperRow(paper domain.Paper, s styles) string {
	title := s.paperTitle.Render(paper.Title)
	if paper.Year > 0 {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", s.meta.Render(fmt.Sprintf("(%d)", paper.Year)))
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, s.counts.Render("#"+paper.ID), " ", title),
	}
	if len(paper.Authors) > 0 {
		lines = append(lines, "  "+s.authors.Render(authorsLabel(paper.Authors)))
	}
	if meta := paperMeta(paper); meta != "" {
		lines = append(lines, "  "+s.meta.Render(meta))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func paperView(paper domain.Paper, s styles) string {
	lines := []string{
		s.paperTitle.Render(paper.Title),
	}
	if len(paper.Authors) > 0 {
		lines = append(lines, s.authors.Render(strings.Join(paper.Authors, ", ")))
	}
	if meta := paperMeta(paper); meta != "" {
		lines = append(lines, s.meta.Render(meta))
	}
	if paper.URL != "" {
		lines = append(lines, s.url.Render(paper.URL))
	}
	if paper.Abstract != "" {
		lines = append(lines, s.section.Render(s.abstract.Render(paper.Abstract)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func bookmarksView(list []domain.Bookmark, opts RenderOptions, s styles) string {
	noun := "bookmarks"
	if len(list) == 1 {
		noun = "bookmark"
	}
	lines := []string{
		s.title.Render("Bookmarks"),
		s.header.Render(fmt.Sprintf("%d %s saved", len(list), noun)),
	}

	if len(list) == 0 {
		lines = append(lines, s.empty.Render("Nothing saved yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, bookmark := range list {
		lines = append(lines, s.section.Render(bookmarkRow(bookmark, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func bookmarkRow(bookmark domain.Bookmark, opts RenderOptions, s styles) string {
	title := bookmarkTitle(bookmark)
	head := s.paperTitle.Render(title)
	if bookmark.Pending() {
		head = lipgloss.JoinHorizontal(lipgloss.Top, head, " ", s.pending.Render("(syncing)"))
	}

	meta := []string{"paper #" + bookmarkPaperID(bookmark)}
	if saved := formatAgo(bookmark.CreatedAt, opts.Now); saved != "" {
		meta = append(meta, "saved "+saved)
	}

	lines := []string{
		head,
		"  " + s.meta.Render(strings.Join(meta, ", ")),
	}
	if bookmark.Notes != "" {
		lines = append(lines, "  "+s.note.Render("note: "+bookmark.Notes))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func bookmarkTitle(bookmark domain.Bookmark) string {
	if bookmark.Paper != nil && strings.TrimSpace(bookmark.Paper.Title) != "" {
		return bookmark.Paper.Title
	}

	return "Paper " + bookmarkPaperID(bookmark)
}

func bookmarkPaperID(bookmark domain.Bookmark) string {
	if id := domain.NormalizePaperID(bookmark.PaperID); id != "" {
		return id
	}
	if bookmark.Paper != nil {
		return domain.NormalizePaperID(bookmark.Paper.ID)
	}

	return ""
}

func historyView(views []domain.PaperView, opts RenderOptions, s styles) string {
	noun := "papers"
	if len(views) == 1 {
		noun = "paper"
	}
	lines := []string{
		s.title.Render("Recently viewed"),
		s.header.Render(fmt.Sprintf("%d %s", len(views), noun)),
	}

	if len(views) == 0 {
		lines = append(lines, s.empty.Render("No papers viewed yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, view := range views {
		row := []string{
			s.paperTitle.Render(view.Title),
			"  " + s.meta.Render(fmt.Sprintf("paper #%s, viewed %s", view.PaperID, formatAgo(view.ViewedAt, opts.Now))),
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, row...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func authorsLabel(authors []string) string {
	if len(authors) <= 3 {
		return strings.Join(authors, ", ")
	}

	return strings.Join(authors[:3], ", ") + " et al."
}

func paperMeta(paper domain.Paper) string {
	parts := make([]string, 0, 3)
	if paper.Venue != "" {
		parts = append(parts, paper.Venue)
	}
	if paper.CitationCount > 0 {
		parts = append(parts, fmt.Sprintf("%d citations", paper.CitationCount))
	}
	if paper.BookmarkCount > 0 {
		parts = append(parts, fmt.Sprintf("%d bookmarks", paper.BookmarkCount))
	}

	return strings.Join(parts, ", ")
}

func formatAgo(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if now.IsZero() || t.After(now) {
		return t.Format("15:04 on 02 Jan")
	}

	elapsed := now.Sub(t)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		minutes := int(elapsed.Minutes())
		suffix := "minutes"
		if minutes == 1 {
			suffix = "minute"
		}
		return fmt.Sprintf("%d %s ago", minutes, suffix)
	case elapsed < 24*time.Hour:
		hours := int(elapsed.Hours())
		suffix := "hours"
		if hours == 1 {
			suffix = "hour"
		}
		return fmt.Sprintf("%d %s ago", hours, suffix)
	case elapsed < 30*24*time.Hour:
		days := int(elapsed.Hours() / 24)
		suffix := "days"
		if days == 1 {
			suffix = "day"
		}
		return fmt.Sprintf("%d %s ago", days, suffix)
	default:
		return "on " + t.Format("02 Jan 2006")
	}
}
