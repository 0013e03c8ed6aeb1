package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/JiYeong0127/paperdeck/internal/domain"
)

// FlexID tolerates the API serving identifiers as JSON strings on some
// endpoints and numbers on others. It always decodes to the canonical
// string form.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = FlexID(domain.NormalizePaperID(value))
		return nil
	}

	var value json.Number
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = FlexID(value.String())

	return nil
}

func (id FlexID) String() string { return string(id) }

type paperPayload struct {
	ID            FlexID   `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Abstract      string   `json:"abstract"`
	Venue         string   `json:"venue"`
	Year          int      `json:"year"`
	URL           string   `json:"url"`
	CitationCount int      `json:"citation_count"`
	BookmarkCount int      `json:"bookmark_count"`
}

func (p paperPayload) toDomain() domain.Paper {
	return domain.Paper{
		ID:            p.ID.String(),
		Title:         p.Title,
		Authors:       p.Authors,
		Abstract:      p.Abstract,
		Venue:         p.Venue,
		Year:          p.Year,
		URL:           p.URL,
		CitationCount: p.CitationCount,
		BookmarkCount: p.BookmarkCount,
	}
}

type paperSummaryPayload struct {
	ID      FlexID   `json:"id"`
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Venue   string   `json:"venue"`
	Year    int      `json:"year"`
}

func (p paperSummaryPayload) toDomain() domain.PaperSummary {
	return domain.PaperSummary{
		ID:      p.ID.String(),
		Title:   p.Title,
		Authors: p.Authors,
		Venue:   p.Venue,
		Year:    p.Year,
	}
}

type searchPagePayload struct {
	Papers  []paperPayload `json:"papers"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

func (p searchPagePayload) toDomain() domain.SearchPage {
	papers := make([]domain.Paper, 0, len(p.Papers))
	for _, paper := range p.Papers {
		papers = append(papers, paper.toDomain())
	}

	return domain.SearchPage{
		Papers:  papers,
		Total:   p.Total,
		Page:    p.Page,
		PerPage: p.PerPage,
	}
}

type bookmarkPayload struct {
	ID        FlexID               `json:"id"`
	PaperID   FlexID               `json:"paper_id"`
	Notes     string               `json:"notes"`
	Paper     *paperSummaryPayload `json:"paper,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

func (b bookmarkPayload) toDomain() domain.Bookmark {
	bookmark := domain.Bookmark{
		ID:        b.ID.String(),
		PaperID:   b.PaperID.String(),
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
	}
	if b.Paper != nil {
		summary := b.Paper.toDomain()
		bookmark.Paper = &summary
	}

	return bookmark
}

type addBookmarkRequest struct {
	PaperID string `json:"paper_id"`
	Notes   string `json:"notes,omitempty"`
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authGrantPayload struct {
	Token       string `json:"token"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

func (g authGrantPayload) toDomain() domain.AuthGrant {
	return domain.AuthGrant{
		Token:       g.Token,
		DisplayName: g.DisplayName,
		Email:       g.Email,
	}
}

type accountPayload struct {
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a accountPayload) toDomain() domain.Account {
	return domain.Account{
		Email:       a.Email,
		DisplayName: a.DisplayName,
		CreatedAt:   a.CreatedAt,
	}
}

type updateAccountRequest struct {
	DisplayName string `json:"display_name"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
