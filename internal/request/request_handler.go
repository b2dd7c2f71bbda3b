package request

import (
	"errors"
	"net/http"

	"devconnect-service/internal/middleware"
	"devconnect-service/internal/models"
	"devconnect-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestService *RequestService
}

func NewRequestHandler(requestService *RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// @Summary Send a connection request
// @Description Record an interested or ignored signal towards another user
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param status path string true "ignored or interested"
// @Param userId path string true "Recipient user id"
// @Success 201 {object} models.ConnectionRequest
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/send/{status}/{userId} [post]
func (h *RequestHandler) Send(c *gin.Context) {
	fromUserID := c.GetString(middleware.ContextUserID)
	toUserID := c.Param("userId")
	status := models.RequestStatus(c.Param("status"))

	rec, err := h.requestService.Send(c.Request.Context(), fromUserID, toUserID, status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrSelfRequest):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrRequestExists):
			response.Error(c, http.StatusConflict, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, response.MsgRequestSent, rec)
}

// @Summary Review a received connection request
// @Description Accept or reject a pending request addressed to the caller
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param status path string true "accepted or rejected"
// @Param requestId path string true "Request id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /requests/review/{status}/{requestId} [post]
func (h *RequestHandler) Review(c *gin.Context) {
	reviewerID := c.GetString(middleware.ContextUserID)
	requestID := c.Param("requestId")
	decision := models.RequestStatus(c.Param("status"))

	outcome, err := h.requestService.Review(c.Request.Context(), reviewerID, requestID, decision)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDecision), errors.Is(err, ErrRequestNotFound):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrRequestExists):
			response.Error(c, http.StatusConflict, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	var msg string
	switch outcome {
	case OutcomeConnected:
		msg = response.MsgConnected
	case OutcomePendingMutual:
		msg = response.MsgPendingMutual
	default:
		msg = response.MsgRequestRejected
	}

	c.JSON(http.StatusOK, gin.H{"message": msg, "status": outcome})
}

// @Summary List established connections
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /user/connections [get]
func (h *RequestHandler) Connections(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	profiles, err := h.requestService.Connections(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, http.StatusOK, response.MsgFetched, profiles)
}

// @Summary List received pending requests
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /user/requests/received [get]
func (h *RequestHandler) Received(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	reqs, err := h.requestService.Received(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, http.StatusOK, response.MsgFetched, reqs)
}

// @Summary List own outbound signals awaiting acceptance
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /user/requests/pending [get]
func (h *RequestHandler) Pending(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	reqs, err := h.requestService.Pending(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, http.StatusOK, response.MsgFetched, reqs)
}
