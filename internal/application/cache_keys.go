package application

import (
	"github.com/JiYeong0127/paperdeck/internal/domain"
	"github.com/JiYeong0127/paperdeck/internal/ports"
)

// Cache key layout. Keys form a hierarchy, so staling a prefix stales every
// entry under it: "papers" covers both detail entries and search pages.
const (
	bookmarksKey     ports.CacheKey = "bookmarks"
	papersKey        ports.CacheKey = "papers"
	searchResultsKey ports.CacheKey = "papers/search"
	accountKey       ports.CacheKey = "account"
	accountMeKey     ports.CacheKey = "account/me"
)

func searchCacheKey(query domain.SearchQuery) ports.CacheKey {
	parts := append([]string{"papers", "search"}, query.CacheKeyParts()...)
	return ports.CacheKeyOf(parts...)
}

func paperDetailKey(paperID string) ports.CacheKey {
	return ports.CacheKeyOf("papers", "detail", domain.NormalizePaperID(paperID))
}
