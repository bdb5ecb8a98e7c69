package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harmonia-app/harmonia/api/middleware"
	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/internal/fileutil"
)

type UserController struct {
	UserUsecase domain.UserUsecase
}

func NewUserController(uc domain.UserUsecase) *UserController {
	return &UserController{UserUsecase: uc}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "not authorized")
		return
	}

	profile, err := uc.UserUsecase.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "profile", profile, nil)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "not authorized")
		return
	}

	var request domain.UpdateProfileRequest
	if err := c.ShouldBind(&request); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	picturePath, err := formImage(c, "profilePicture")
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	defer fileutil.Cleanup(picturePath)

	updated, err := uc.UserUsecase.UpdateProfile(c.Request.Context(), user.ID, &request, picturePath)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "user", updated, nil)
}

func (uc *UserController) ToggleLikeSong(c *gin.Context) {
	uc.toggle(c, "likedSongs", uc.UserUsecase.ToggleLikeSong)
}

func (uc *UserController) ToggleLikeAlbum(c *gin.Context) {
	uc.toggle(c, "likedAlbums", uc.UserUsecase.ToggleLikeAlbum)
}

func (uc *UserController) ToggleFollowArtist(c *gin.Context) {
	uc.toggle(c, "followedArtists", uc.UserUsecase.ToggleFollowArtist)
}

func (uc *UserController) ToggleFollowPlaylist(c *gin.Context) {
	uc.toggle(c, "followedPlaylists", uc.UserUsecase.ToggleFollowPlaylist)
}

func (uc *UserController) toggle(
	c *gin.Context,
	key string,
	do func(ctx context.Context, userID primitive.ObjectID, targetID string) (*domain.ToggleResult, []primitive.ObjectID, error),
) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "not authorized")
		return
	}

	result, members, err := do(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"result": result.Status,
		key:      members,
	})
}
