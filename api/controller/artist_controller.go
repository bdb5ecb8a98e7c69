package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/internal/apifeature"
	"github.com/harmonia-app/harmonia/internal/fileutil"
)

type ArtistController struct {
	ArtistUsecase domain.ArtistUsecase
}

func NewArtistController(uc domain.ArtistUsecase) *ArtistController {
	return &ArtistController{ArtistUsecase: uc}
}

func (ac *ArtistController) Create(c *gin.Context) {
	var request domain.CreateArtistRequest
	if err := c.ShouldBind(&request); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	imagePath, err := formImage(c, "image")
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	defer fileutil.Cleanup(imagePath)

	artist, err := ac.ArtistUsecase.Create(c.Request.Context(), &request, imagePath)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "artist", artist, nil)
}

func (ac *ArtistController) Fetch(c *gin.Context) {
	params := apifeature.FromQuery(c.Request.URL.Query())

	artists, pagination, err := ac.ArtistUsecase.Fetch(c.Request.Context(), params)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "artists", artists, pagination)
}

func (ac *ArtistController) GetByID(c *gin.Context) {
	artist, err := ac.ArtistUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "artist", artist, nil)
}

func (ac *ArtistController) Update(c *gin.Context) {
	var request domain.UpdateArtistRequest
	if err := c.ShouldBind(&request); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	imagePath, err := formImage(c, "image")
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	defer fileutil.Cleanup(imagePath)

	artist, err := ac.ArtistUsecase.Update(c.Request.Context(), c.Param("id"), &request, imagePath)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "artist", artist, nil)
}

func (ac *ArtistController) Delete(c *gin.Context) {
	if err := ac.ArtistUsecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		DomainErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (ac *ArtistController) Top(c *gin.Context) {
	artists, err := ac.ArtistUsecase.Top(c.Request.Context(), queryLimit(c))
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "artists", artists, nil)
}

func (ac *ArtistController) TopSongs(c *gin.Context) {
	songs, err := ac.ArtistUsecase.TopSongs(c.Request.Context(), c.Param("id"), queryLimit(c))
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "songs", songs, nil)
}

// queryLimit reads an optional ?limit= value; 0 lets the usecase pick its
// default.
func queryLimit(c *gin.Context) int64 {
	limit, err := strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
