package service

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/repack-search-backend/internal/pkg/logger"
	"github.com/lk2023060901/repack-search-backend/internal/pkg/response"
	"github.com/lk2023060901/repack-search-backend/internal/search/biz"
)

// SyncService exposes the index refresh over HTTP.
type SyncService struct {
	uc     *biz.SyncUseCase
	logger *logger.Logger
}

// NewSyncService creates the sync HTTP service.
func NewSyncService(uc *biz.SyncUseCase, logger *logger.Logger) *SyncService {
	return &SyncService{
		uc:     uc,
		logger: logger,
	}
}

// Refresh handles POST /sync. The reply carries the synced count in
// the message and no data payload.
func (s *SyncService) Refresh(c *gin.Context) {
	result, err := s.uc.Refresh(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.SuccessWithMessage(c, fmt.Sprintf("Synced %d repacks", result.Total), nil)
}

// RegisterRoutes mounts the sync endpoint on the given group.
func (s *SyncService) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/sync", s.Refresh)
}
