package application

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/JiYeong0127/paperdeck/internal/domain"
	"github.com/JiYeong0127/paperdeck/internal/logger"
	"github.com/JiYeong0127/paperdeck/internal/ports"
)

// ViewRecorder captures that a paper was opened. Recording is best effort
// from the search side; a failing recorder never fails the read.
type ViewRecorder interface {
	Record(ctx context.Context, paper domain.Paper) error
}

// SearchService serves the catalog read paths. Every read goes through the
// query cache, so repeating a search or reopening a paper within the
// freshness window costs no network call, and a bookmark mutation staling
// the papers prefix transparently forces the next read to refetch.
type SearchService struct {
	api      ports.PaperAPI
	cache    ports.QueryCache
	views    ViewRecorder
	validate *validator.Validate
	log      logger.Logger
}

func NewSearchService(api ports.PaperAPI, cache ports.QueryCache, views ViewRecorder, log logger.Logger) *SearchService {
	if log == nil {
		log = logger.Nop()
	}

	return &SearchService{
		api:      api,
		cache:    cache,
		views:    views,
		validate: validator.New(),
		log:      log,
	}
}

func (s *SearchService) Search(ctx context.Context, query domain.SearchQuery) (domain.SearchPage, error) {
	query = query.Normalize()
	if err := s.validate.Struct(query); err != nil {
		return domain.SearchPage{}, fmt.Errorf("validate search query: %w", err)
	}

	value, err := s.cache.Fetch(ctx, searchCacheKey(query), func(fctx context.Context) (any, error) {
		page, err := s.api.SearchPapers(fctx, query)
		if err != nil {
			return nil, fmt.Errorf("search papers: %w", err)
		}

		return page, nil
	})
	if err != nil {
		return domain.SearchPage{}, err
	}

	page, _ := value.(domain.SearchPage)

	return page, nil
}

// GetPaper returns the paper detail and records the view in the
// recently-viewed history.
func (s *SearchService) GetPaper(ctx context.Context, paperID string) (domain.Paper, error) {
	paperID = domain.NormalizePaperID(paperID)
	if paperID == "" {
		return domain.Paper{}, domain.ErrPaperNotFound
	}

	value, err := s.cache.Fetch(ctx, paperDetailKey(paperID), func(fctx context.Context) (any, error) {
		paper, err := s.api.GetPaper(fctx, paperID)
		if err != nil {
			return nil, fmt.Errorf("get paper %s: %w", paperID, err)
		}

		return paper, nil
	})
	if err != nil {
		return domain.Paper{}, err
	}

	paper, _ := value.(domain.Paper)
	if s.views != nil {
		if err := s.views.Record(ctx, paper); err != nil {
			s.log.Warn("record paper view", logger.String("paper_id", paperID), logger.Error(err))
		}
	}

	return paper, nil
}
