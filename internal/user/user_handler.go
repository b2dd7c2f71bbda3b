package user

import (
	"errors"
	"net/http"

	"devconnect-service/internal/middleware"
	"devconnect-service/internal/models"
	"devconnect-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *UserService
}

func NewUserHandler(userService *UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// @Summary View own profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse
// @Router /profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary Edit own profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.EditProfileRequest true "Edit Request"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} map[string]string
// @Router /profile [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req models.EditProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, response.MsgProfileUpdated, profile)
}

// @Summary Change password
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /profile/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, ErrWrongPassword) || errors.Is(err, ErrWeakPassword) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, response.MsgPasswordChanged, nil)
}

// @Summary Upload profile photo
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Photo"
// @Success 200 {object} map[string]string
// @Router /profile/photo [post]
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	file, err := c.FormFile("photo")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "photo file is required")
		return
	}

	url, err := h.userService.UpdatePhoto(c.Request.Context(), userID, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrPhotoTooLarge):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrPhotoUnavailable):
			response.Error(c, http.StatusServiceUnavailable, err.Error())
		default:
			h.writeError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"photoUrl": url})
}

func (h *UserHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, ErrUserNotFound) {
		response.Error(c, http.StatusNotFound, err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, err.Error())
}
