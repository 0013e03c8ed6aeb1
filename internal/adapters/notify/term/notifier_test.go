package term

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifierRendersOneLinePerNotice(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	notifier := NewNotifierTo(&buf)

	notifier.Success("bookmark added")
	notifier.Info("already bookmarked")
	notifier.Failure("bookmark failed", "server unavailable")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "bookmark added")
	assert.Contains(t, lines[1], "already bookmarked")
	assert.Contains(t, lines[2], "bookmark failed")
	assert.Contains(t, lines[2], "server unavailable")
}

func TestNotifierOmitsEmptyDetail(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	notifier := NewNotifierTo(&buf)

	notifier.Failure("bookmark failed", "   ")

	assert.NotContains(t, buf.String(), "(")
}
