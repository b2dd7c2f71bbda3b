package feed

import (
	"net/http"
	"strconv"

	"devconnect-service/internal/middleware"
	"devconnect-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedService *FeedService
}

func NewFeedHandler(feedService *FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// @Summary Discovery feed
// @Description Paginated list of users the caller has no request history with
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size, capped at 50"
// @Success 200 {array} models.UserSummary
// @Router /user/feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	users, err := h.feedService.GetFeed(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, users)
}
