package service

import (
	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/repack-search-backend/internal/pkg/logger"
	"github.com/lk2023060901/repack-search-backend/internal/pkg/response"
	"github.com/lk2023060901/repack-search-backend/internal/repack/types"
	"github.com/lk2023060901/repack-search-backend/internal/search/biz"
)

// SearchService exposes the two search paths over HTTP.
type SearchService struct {
	uc     *biz.SearchUseCase
	logger *logger.Logger
}

// NewSearchService creates the search HTTP service.
func NewSearchService(uc *biz.SearchUseCase, logger *logger.Logger) *SearchService {
	return &SearchService{
		uc:     uc,
		logger: logger,
	}
}

// SearchIndexed handles GET /search?q=...
func (s *SearchService) SearchIndexed(c *gin.Context) {
	query := c.Query("q")

	listings, err := s.uc.SearchIndexed(c.Request.Context(), query)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	// An empty result page is a success with an empty list, never null
	if listings == nil {
		listings = []*types.IndexedListing{}
	}

	response.Success(c, listings)
}

// SearchLive handles GET /search/live?q=...
func (s *SearchService) SearchLive(c *gin.Context) {
	query := c.Query("q")

	listings, err := s.uc.SearchLive(c.Request.Context(), query)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, listings)
}

// RegisterRoutes mounts the search endpoints on the given group.
func (s *SearchService) RegisterRoutes(r *gin.RouterGroup) {
	search := r.Group("/search")
	{
		search.GET("", s.SearchIndexed)
		search.GET("/live", s.SearchLive)
	}
}
