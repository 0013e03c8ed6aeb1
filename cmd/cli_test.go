package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginGrantBody = `{"token":"tok-cli-1","display_name":"Ji","email":"ji@example.com"}`

func TestVersionPrintsBuildVersion(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestSearchRendersResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/papers", r.URL.Path)
		assert.Equal(t, "attention is all you need", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"papers":[{"id":"42","title":"Attention Is All You Need","authors":["Vaswani"],"venue":"NeurIPS","year":2017,"citation_count":90000,"bookmark_count":12},{"id":7,"title":"Deep Residual Learning","authors":["He"],"venue":"CVPR","year":2016}],"total":2,"page":1,"per_page":20}`)
	}))
	defer server.Close()

	t.Setenv("PAPERDECK_API_URL", server.URL)

	home := t.TempDir()
	stdout, stderr, err := executeCLI(t, home, "search", "attention", "is", "all", "you", "need")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Paper search")
	assert.Contains(t, stdout, `2 papers for "attention is all you need"`)
	assert.Contains(t, stdout, "Attention Is All You Need")
	assert.Contains(t, stdout, "Deep Residual Learning")
	assert.Contains(t, stderr, "Searching papers")
}

func TestSearchJSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"papers":[{"id":"42","title":"Attention Is All You Need","year":2017}],"total":1,"page":1,"per_page":20}`)
	}))
	defer server.Close()

	t.Setenv("PAPERDECK_API_URL", server.URL)

	home := t.TempDir()
	stdout, _, err := executeCLI(t, home, "search", "attention", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Total\": 1")
	assert.Contains(t, stdout, "\"Attention Is All You Need\"")
}

func TestSearchRejectsInvertedYearRangeWithoutNetwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	t.Setenv("PAPERDECK_API_URL", server.URL)

	home := t.TempDir()
	_, _, err := executeCLI(t, home, "search", "transformers", "--year-from", "2024", "--year-to", "2020")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate search query")
}

func TestPaperViewRecordsHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/papers/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"id":42,"title":"Attention Is All You Need","authors":["Vaswani"],"abstract":"Attention only.","venue":"NeurIPS","year":2017,"citation_count":90000,"bookmark_count":12}`)
	}))
	defer server.Close()

	t.Setenv("PAPERDECK_API_URL", server.URL)

	home := t.TempDir()
	stdout, _, err := executeCLI(t, home, "paper", "42")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Attention Is All You Need")
	assert.Contains(t, stdout, "Vaswani")

	stdout, _, err = executeCLI(t, home, "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Recently viewed")
	assert.Contains(t, stdout, "Attention Is All You Need")
}

func TestHistoryClearForgetsViews(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"id":"7","title":"Deep Residual Learning","year":2016}`)
	}))
	defer server.Close()

	t.Setenv("PAPERDECK_API_URL", server.URL)

	home := t.TempDir()
	_, _, err := executeCLI(t, home, "paper", "7")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "history", "--clear")
	require.NoError(t, err)
	assert.Contains(t, stdout, "History cleared")

	stdout, _, err = executeCLI(t, home, "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No papers viewed yet.")
}

func TestAuthStatusWithoutSession(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not signed in")
}

func TestAuthLoginRequiresPasswordFlag(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "auth", "login", "--email", "ji@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"password\" not set")
}

func TestAuthLoginRejectsMalformedEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	t.Setenv("PAPERDECK_API_URL", server.URL)

	home := t.TempDir()
	_, _, err := executeCLI(t, home, "auth", "login", "--email", "not-an-email", "--password", "secret-123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate login command")
}

func TestAuthLoginPersistsSessionAcrossCommands(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, loginGrantBody)
	}))
	defer server.Close()

	t.Setenv("PAPERDECK_API_URL", server.URL)

	home := t.TempDir()
	signIn(t, home)

	stdout, _, err := executeCLI(t, home, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed in as Ji (ji@example.com)")
}

func TestAuthLogoutClearsStoredSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login":
			_, _ = fmt.Fprint(w, loginGrantBody)
		case "/auth/logout":
			_, _ = fmt.Fprint(w, `{}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	t.Setenv("PAPERDECK_API_URL", server.URL)

	home := t.TempDir()
	signIn(t, home)

	stdout, _, err := executeCLI(t, home, "auth", "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed out")

	stdout, _, err = executeCLI(t, home, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not signed in")
}

func TestBookmarkAddPrintsNoticeAndSendsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method + " " + r.URL.Path {
		case "POST /auth/login":
			_, _ = fmt.Fprint(w, loginGrantBody)
		case "POST /bookmarks":
			assert.Equal(t, "Bearer tok-cli-1", r.Header.Get("Authorization"))
			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), `"paper_id":"42"`)
			assert.Contains(t, string(body), `"notes":"read later"`)
			_, _ = fmt.Fprint(w, `{"id":"b-9","paper_id":"42","notes":"read later","created_at":"2026-02-03T04:05:06Z"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	t.Setenv("PAPERDECK_API_URL", server.URL)

	home := t.TempDir()
	signIn(t, home)

	_, stderr, err := executeCLI(t, home, "bookmarks", "add", "42", "--notes", "read later")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Bookmarked")
}

func TestBookmarkAddDuplicateIsSoftOutcome(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method + " " + r.URL.Path {
		case "POST /auth/login":
			_, _ = fmt.Fprint(w, loginGrantBody)
		case "POST /bookmarks":
			w.WriteHeader(http.StatusConflict)
			_, _ = fmt.Fprint(w, `{"error":{"code":"DUPLICATE_BOOKMARK","message":"paper is already bookmarked"}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	t.Setenv("PAPERDECK_API_URL", server.URL)

	home := t.TempDir()
	signIn(t, home)

	_, stderr, err := executeCLI(t, home, "bookmarks", "add", "42")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Already bookmarked")
}

func TestBookmarkMutationWithoutSessionKeepsNoticeAsOnlyMessage(t *testing.T) {
	home := t.TempDir()

	_, stderr, err := executeCLI(t, home, "bookmarks", "add", "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed in")
	assert.Contains(t, stderr, "Sign in to bookmark papers")
	assert.NotContains(t, stderr, "Error:")
}

func TestBookmarksListThenRemoveFlow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method + " " + r.URL.Path {
		case "POST /auth/login":
			_, _ = fmt.Fprint(w, loginGrantBody)
		case "GET /bookmarks":
			_, _ = fmt.Fprint(w, `[{"id":"b-1","paper_id":42,"notes":"","paper":{"id":42,"title":"Attention Is All You Need","authors":["Vaswani"],"venue":"NeurIPS","year":2017},"created_at":"2026-01-02T15:04:05Z"}]`)
		case "DELETE /bookmarks/b-1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	t.Setenv("PAPERDECK_API_URL", server.URL)

	home := t.TempDir()
	signIn(t, home)

	stdout, _, err := executeCLI(t, home, "bookmarks")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 bookmark saved")
	assert.Contains(t, stdout, "Attention Is All You Need")

	_, stderr, err := executeCLI(t, home, "bookmarks", "remove", "42")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Bookmark removed")
}

func TestBookmarkRemoveUnknownPaperReportsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method + " " + r.URL.Path {
		case "POST /auth/login":
			_, _ = fmt.Fprint(w, loginGrantBody)
		case "GET /bookmarks":
			_, _ = fmt.Fprint(w, `[]`)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	t.Setenv("PAPERDECK_API_URL", server.URL)

	home := t.TempDir()
	signIn(t, home)

	_, stderr, err := executeCLI(t, home, "bookmarks", "remove", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bookmark entry not found")
	assert.Contains(t, stderr, "No bookmark found for this paper")
}

func TestAccountShowDisplaysProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login":
			_, _ = fmt.Fprint(w, loginGrantBody)
		case "/account":
			assert.Equal(t, "Bearer tok-cli-1", r.Header.Get("Authorization"))
			_, _ = fmt.Fprint(w, `{"email":"ji@example.com","display_name":"Ji","created_at":"2024-03-01T00:00:00Z"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	t.Setenv("PAPERDECK_API_URL", server.URL)

	home := t.TempDir()
	signIn(t, home)

	stdout, _, err := executeCLI(t, home, "account", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Ji <ji@example.com>")
	assert.Contains(t, stdout, "member since 1 Mar 2024")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func signIn(t *testing.T, home string) {
	t.Helper()

	stdout, _, err := executeCLI(t, home,
		"auth", "login",
		"--email", "ji@example.com",
		"--password", "secret-123",
	)
	require.NoError(t, err)
	require.Contains(t, stdout, "Signed in as Ji")
}
