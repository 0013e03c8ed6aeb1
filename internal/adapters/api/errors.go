package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/JiYeong0127/paperdeck/internal/domain"
)

// Structured error codes the server attaches to failed responses.
const (
	codeDuplicateBookmark = "DUPLICATE_BOOKMARK"
	codeUnauthenticated   = "UNAUTHENTICATED"
)

// duplicateFragments classifies a duplicate-bookmark failure from message
// wording alone. Coupling to server phrasing is fragile, so this runs only
// when the response carries no structured code.
var duplicateFragments = []string{"already bookmarked", "duplicate", "conflict"}

type wireError struct {
	Err struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Error is a failed API response. Unwrap exposes the matching domain
// sentinel, if any, so callers classify with errors.Is.
type Error struct {
	StatusCode int
	Code       string
	Message    string
	sentinel   error
}

func (e *Error) Error() string {
	message := e.Message
	if message == "" {
		message = strings.ToLower(http.StatusText(e.StatusCode))
	}
	if e.Code != "" {
		return fmt.Sprintf("api: %s (%s, status %d)", message, e.Code, e.StatusCode)
	}

	return fmt.Sprintf("api: %s (status %d)", message, e.StatusCode)
}

func (e *Error) Unwrap() error { return e.sentinel }

// decodeError turns a non-2xx response into an *Error. notFound is the
// sentinel for a 404 on this particular endpoint; pass nil when a 404
// carries no specific meaning.
func decodeError(resp *resty.Response, notFound error) error {
	status := resp.StatusCode()

	var code, message string
	if wire, ok := resp.Error().(*wireError); ok && wire != nil {
		code = wire.Err.Code
		message = wire.Err.Message
	}

	apiErr := &Error{StatusCode: status, Code: code, Message: message}
	if sentinel := classify(status, code, message); sentinel != nil {
		apiErr.sentinel = sentinel
	} else if status == http.StatusNotFound {
		apiErr.sentinel = notFound
	}

	return apiErr
}

// classify picks the domain sentinel for a failure. A structured code or
// status wins; message substrings are the fallback for servers that send
// neither.
func classify(status int, code, message string) error {
	switch code {
	case codeDuplicateBookmark:
		return domain.ErrDuplicateBookmark
	case codeUnauthenticated:
		return domain.ErrUnauthenticated
	}

	switch status {
	case http.StatusConflict:
		return domain.ErrDuplicateBookmark
	case http.StatusUnauthorized:
		return domain.ErrUnauthenticated
	}

	if code == "" {
		lowered := strings.ToLower(message)
		for _, fragment := range duplicateFragments {
			if strings.Contains(lowered, fragment) {
				return domain.ErrDuplicateBookmark
			}
		}
	}

	return nil
}
