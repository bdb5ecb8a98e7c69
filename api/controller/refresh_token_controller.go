package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-app/harmonia/domain"
)

type RefreshTokenController struct {
	RefreshTokenUsecase domain.RefreshTokenUsecase
}

func NewRefreshTokenController(uc domain.RefreshTokenUsecase) *RefreshTokenController {
	return &RefreshTokenController{RefreshTokenUsecase: uc}
}

func (rtc *RefreshTokenController) RefreshToken(c *gin.Context) {
	var request domain.RefreshTokenRequest
	if err := c.ShouldBind(&request); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tokens, err := rtc.RefreshTokenUsecase.Refresh(c.Request.Context(), request.RefreshToken)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "tokens", tokens, nil)
}
