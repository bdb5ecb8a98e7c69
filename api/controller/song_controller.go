package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/internal/apifeature"
	"github.com/harmonia-app/harmonia/internal/fileutil"
)

type SongController struct {
	SongUsecase domain.SongUsecase
}

func NewSongController(uc domain.SongUsecase) *SongController {
	return &SongController{SongUsecase: uc}
}

func (sc *SongController) Create(c *gin.Context) {
	var request domain.CreateSongRequest
	if err := c.ShouldBind(&request); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	audioPath, err := formAudio(c, "audio")
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	coverPath, err := formImage(c, "coverImage")
	if err != nil {
		fileutil.Cleanup(audioPath)
		DomainErrorResponse(c, err)
		return
	}
	defer fileutil.CleanupAll(audioPath, coverPath)

	song, err := sc.SongUsecase.Create(c.Request.Context(), &request, audioPath, coverPath)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "song", song, nil)
}

func (sc *SongController) Fetch(c *gin.Context) {
	params := apifeature.FromQuery(c.Request.URL.Query())

	songs, pagination, err := sc.SongUsecase.Fetch(c.Request.Context(), params)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "songs", songs, pagination)
}

func (sc *SongController) GetByID(c *gin.Context) {
	song, err := sc.SongUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "song", song, nil)
}

func (sc *SongController) Update(c *gin.Context) {
	var request domain.UpdateSongRequest
	if err := c.ShouldBind(&request); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	audioPath, err := formAudio(c, "audio")
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	coverPath, err := formImage(c, "coverImage")
	if err != nil {
		fileutil.Cleanup(audioPath)
		DomainErrorResponse(c, err)
		return
	}
	defer fileutil.CleanupAll(audioPath, coverPath)

	song, err := sc.SongUsecase.Update(c.Request.Context(), c.Param("id"), &request, audioPath, coverPath)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "song", song, nil)
}

func (sc *SongController) Delete(c *gin.Context) {
	if err := sc.SongUsecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		DomainErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (sc *SongController) Top(c *gin.Context) {
	songs, err := sc.SongUsecase.Top(c.Request.Context(), queryLimit(c))
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "songs", songs, nil)
}

func (sc *SongController) Newest(c *gin.Context) {
	songs, err := sc.SongUsecase.Newest(c.Request.Context(), queryLimit(c))
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "songs", songs, nil)
}
