package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/JiYeong0127/paperdeck/internal/domain"
	"github.com/JiYeong0127/paperdeck/internal/logger"
	"github.com/JiYeong0127/paperdeck/internal/ports"
)

const (
	defaultTimeout  = 15 * time.Second
	requestIDHeader = "X-Request-ID"
)

// TokenSource yields the bearer token for the current session, or "" when
// nobody is signed in. It runs once per request so a login or logout takes
// effect without rebuilding the client.
type TokenSource func(ctx context.Context) string

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Token     TokenSource
	Logger    logger.Logger
}

// Client talks to the remote paper service. It enforces no timeout policy
// of its own beyond the HTTP timeout configured here.
type Client struct {
	http *resty.Client
	log  logger.Logger
}

var (
	_ ports.PaperAPI   = (*Client)(nil)
	_ ports.AccountAPI = (*Client)(nil)
)

func NewClient(cfg Config) *Client {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		httpClient.SetHeader("User-Agent", cfg.UserAgent)
	}

	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader(requestIDHeader, uuid.NewString())
		if cfg.Token != nil {
			if token := cfg.Token(req.Context()); token != "" {
				req.SetAuthToken(token)
			}
		}
		return nil
	})

	httpClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug("api response",
			logger.String("method", resp.Request.Method),
			logger.String("url", resp.Request.URL),
			logger.Int("status", resp.StatusCode()),
			logger.Duration("elapsed", resp.Time()),
		)
		return nil
	})

	return &Client{http: httpClient, log: log}
}

func (c *Client) SearchPapers(ctx context.Context, query domain.SearchQuery) (domain.SearchPage, error) {
	query = query.Normalize()

	params := map[string]string{
		"query":    query.Text,
		"sort":     string(query.Sort),
		"page":     strconv.Itoa(query.Page),
		"per_page": strconv.Itoa(query.PerPage),
	}
	if query.Field != "" {
		params["field"] = query.Field
	}
	if query.YearFrom > 0 {
		params["year_from"] = strconv.Itoa(query.YearFrom)
	}
	if query.YearTo > 0 {
		params["year_to"] = strconv.Itoa(query.YearTo)
	}

	var payload searchPagePayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&payload).
		SetError(&wireError{}).
		Get("/papers")
	if err != nil {
		return domain.SearchPage{}, fmt.Errorf("search papers: %w", err)
	}
	if resp.IsError() {
		return domain.SearchPage{}, fmt.Errorf("search papers: %w", decodeError(resp, nil))
	}

	return payload.toDomain(), nil
}

func (c *Client) GetPaper(ctx context.Context, paperID string) (domain.Paper, error) {
	id := domain.NormalizePaperID(paperID)
	if id == "" {
		return domain.Paper{}, domain.ErrPaperNotFound
	}

	var payload paperPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&payload).
		SetError(&wireError{}).
		Get("/papers/{id}")
	if err != nil {
		return domain.Paper{}, fmt.Errorf("get paper %s: %w", id, err)
	}
	if resp.IsError() {
		return domain.Paper{}, fmt.Errorf("get paper %s: %w", id, decodeError(resp, domain.ErrPaperNotFound))
	}

	return payload.toDomain(), nil
}

func (c *Client) ListBookmarks(ctx context.Context) ([]domain.Bookmark, error) {
	var payload []bookmarkPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		SetError(&wireError{}).
		Get("/bookmarks")
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("list bookmarks: %w", decodeError(resp, nil))
	}

	bookmarks := make([]domain.Bookmark, 0, len(payload))
	for _, entry := range payload {
		bookmarks = append(bookmarks, entry.toDomain())
	}

	return bookmarks, nil
}

func (c *Client) AddBookmark(ctx context.Context, paperID string, notes string) (domain.Bookmark, error) {
	var payload bookmarkPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(addBookmarkRequest{PaperID: domain.NormalizePaperID(paperID), Notes: notes}).
		SetResult(&payload).
		SetError(&wireError{}).
		Post("/bookmarks")
	if err != nil {
		return domain.Bookmark{}, fmt.Errorf("add bookmark: %w", err)
	}
	if resp.IsError() {
		return domain.Bookmark{}, fmt.Errorf("add bookmark: %w", decodeError(resp, domain.ErrPaperNotFound))
	}

	return payload.toDomain(), nil
}

func (c *Client) DeleteBookmark(ctx context.Context, bookmarkID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", bookmarkID).
		SetError(&wireError{}).
		Delete("/bookmarks/{id}")
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("delete bookmark: %w", decodeError(resp, domain.ErrBookmarkNotFound))
	}

	return nil
}

func (c *Client) Register(ctx context.Context, email, password, displayName string) (domain.AuthGrant, error) {
	var payload authGrantPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(registerRequest{Email: email, Password: password, DisplayName: displayName}).
		SetResult(&payload).
		SetError(&wireError{}).
		Post("/auth/register")
	if err != nil {
		return domain.AuthGrant{}, fmt.Errorf("register: %w", err)
	}
	if resp.IsError() {
		return domain.AuthGrant{}, fmt.Errorf("register: %w", decodeError(resp, nil))
	}

	return payload.toDomain(), nil
}

func (c *Client) Login(ctx context.Context, email, password string) (domain.AuthGrant, error) {
	var payload authGrantPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(loginRequest{Email: email, Password: password}).
		SetResult(&payload).
		SetError(&wireError{}).
		Post("/auth/login")
	if err != nil {
		return domain.AuthGrant{}, fmt.Errorf("login: %w", err)
	}
	if resp.IsError() {
		return domain.AuthGrant{}, fmt.Errorf("login: %w", decodeError(resp, nil))
	}

	return payload.toDomain(), nil
}

func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetError(&wireError{}).
		Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("logout: %w", decodeError(resp, nil))
	}

	return nil
}

func (c *Client) GetAccount(ctx context.Context) (domain.Account, error) {
	var payload accountPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		SetError(&wireError{}).
		Get("/account")
	if err != nil {
		return domain.Account{}, fmt.Errorf("get account: %w", err)
	}
	if resp.IsError() {
		return domain.Account{}, fmt.Errorf("get account: %w", decodeError(resp, nil))
	}

	return payload.toDomain(), nil
}

func (c *Client) UpdateDisplayName(ctx context.Context, displayName string) (domain.Account, error) {
	var payload accountPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(updateAccountRequest{DisplayName: displayName}).
		SetResult(&payload).
		SetError(&wireError{}).
		Patch("/account")
	if err != nil {
		return domain.Account{}, fmt.Errorf("update display name: %w", err)
	}
	if resp.IsError() {
		return domain.Account{}, fmt.Errorf("update display name: %w", decodeError(resp, nil))
	}

	return payload.toDomain(), nil
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(changePasswordRequest{CurrentPassword: current, NewPassword: next}).
		SetError(&wireError{}).
		Put("/account/password")
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("change password: %w", decodeError(resp, nil))
	}

	return nil
}
