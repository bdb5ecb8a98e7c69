package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/internal/apifeature"
	"github.com/harmonia-app/harmonia/internal/fileutil"
)

type AlbumController struct {
	AlbumUsecase domain.AlbumUsecase
}

func NewAlbumController(uc domain.AlbumUsecase) *AlbumController {
	return &AlbumController{AlbumUsecase: uc}
}

func (ac *AlbumController) Create(c *gin.Context) {
	var request domain.CreateAlbumRequest
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

	album, err := ac.AlbumUsecase.Create(c.Request.Context(), &request, coverPath)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "album", album, nil)
}

func (ac *AlbumController) Fetch(c *gin.Context) {
	params := apifeature.FromQuery(c.Request.URL.Query())

	albums, pagination, err := ac.AlbumUsecase.Fetch(c.Request.Context(), params)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "albums", albums, pagination)
}

func (ac *AlbumController) GetByID(c *gin.Context) {
	album, err := ac.AlbumUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "album", album, nil)
}

func (ac *AlbumController) Update(c *gin.Context) {
	var request domain.UpdateAlbumRequest
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

	album, err := ac.AlbumUsecase.Update(c.Request.Context(), c.Param("id"), &request, coverPath)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "album", album, nil)
}

func (ac *AlbumController) Delete(c *gin.Context) {
	if err := ac.AlbumUsecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		DomainErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (ac *AlbumController) Newest(c *gin.Context) {
	albums, err := ac.AlbumUsecase.Newest(c.Request.Context(), queryLimit(c))
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "albums", albums, nil)
}
