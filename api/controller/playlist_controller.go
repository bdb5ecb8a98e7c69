package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harmonia-app/harmonia/api/middleware"
	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/internal/apifeature"
	"github.com/harmonia-app/harmonia/internal/fileutil"
)

type PlaylistController struct {
	PlaylistUsecase domain.PlaylistUsecase
}

func NewPlaylistController(uc domain.PlaylistUsecase) *PlaylistController {
	return &PlaylistController{PlaylistUsecase: uc}
}

func (pc *PlaylistController) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "not authorized")
		return
	}

	var request domain.CreatePlaylistRequest
	if err := c.ShouldBind(&request); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	coverPath, err := formImage(c, "coverImage")
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	defer fileutil.Cleanup(coverPath)

	playlist, err := pc.PlaylistUsecase.Create(c.Request.Context(), user.ID, &request, coverPath)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "playlist", playlist, nil)
}

func (pc *PlaylistController) Fetch(c *gin.Context) {
	params := apifeature.FromQuery(c.Request.URL.Query())

	playlists, pagination, err := pc.PlaylistUsecase.Fetch(c.Request.Context(), params)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "playlists", playlists, pagination)
}

// GetByID sits behind the optional auth middleware: a private playlist is
// visible to its creator and collaborators only.
func (pc *PlaylistController) GetByID(c *gin.Context) {
	var caller *primitive.ObjectID
	if user, ok := middleware.CurrentUser(c); ok {
		caller = &user.ID
	}

	playlist, err := pc.PlaylistUsecase.GetByID(c.Request.Context(), c.Param("id"), caller)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "playlist", playlist, nil)
}

func (pc *PlaylistController) GetMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "not authorized")
		return
	}

	playlists, err := pc.PlaylistUsecase.GetMine(c.Request.Context(), user.ID)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "playlists", playlists, nil)
}

func (pc *PlaylistController) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "not authorized")
		return
	}

	var request domain.UpdatePlaylistRequest
	if err := c.ShouldBind(&request); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	coverPath, err := formImage(c, "coverImage")
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	defer fileutil.Cleanup(coverPath)

	playlist, err := pc.PlaylistUsecase.Update(c.Request.Context(), c.Param("id"), user.ID, &request, coverPath)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "playlist", playlist, nil)
}

func (pc *PlaylistController) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "not authorized")
		return
	}

	if err := pc.PlaylistUsecase.Delete(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		DomainErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (pc *PlaylistController) AddSongs(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "not authorized")
		return
	}

	var request domain.AddSongsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	playlist, err := pc.PlaylistUsecase.AddSongs(c.Request.Context(), c.Param("id"), user.ID, request.SongIDs)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "playlist", playlist, nil)
}

func (pc *PlaylistController) RemoveSong(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "not authorized")
		return
	}

	playlist, err := pc.PlaylistUsecase.RemoveSong(c.Request.Context(), c.Param("id"), c.Param("songId"), user.ID)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "playlist", playlist, nil)
}

func (pc *PlaylistController) AddCollaborator(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "not authorized")
		return
	}

	var request domain.CollaboratorRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	playlist, err := pc.PlaylistUsecase.AddCollaborator(c.Request.Context(), c.Param("id"), user.ID, request.UserID)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "playlist", playlist, nil)
}

func (pc *PlaylistController) RemoveCollaborator(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "not authorized")
		return
	}

	var request domain.CollaboratorRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	playlist, err := pc.PlaylistUsecase.RemoveCollaborator(c.Request.Context(), c.Param("id"), user.ID, request.UserID)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "playlist", playlist, nil)
}

func (pc *PlaylistController) Featured(c *gin.Context) {
	playlists, err := pc.PlaylistUsecase.Featured(c.Request.Context(), queryLimit(c))
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "playlists", playlists, nil)
}
