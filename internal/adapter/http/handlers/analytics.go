package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/adapter/http/mapper"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/adapter/http/middleware"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/core/ports"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/pkg/apierrors"
)

type AnalyticsHandler struct {
	analyticsService ports.AnalyticsService
}

func NewAnalyticsHandler(analyticsService ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) Summary(c *gin.Context) {
	lang := middleware.GetLang(c)

	summary, err := h.analyticsService.Summary(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to compute analytics summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgInternalError, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToAnalyticsSummary(summary))
}

func (h *AnalyticsHandler) StatusCount(c *gin.Context) {
	lang := middleware.GetLang(c)

	count, err := h.analyticsService.StatusCount(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to compute status counts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgInternalError, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToStatusCount(count))
}
