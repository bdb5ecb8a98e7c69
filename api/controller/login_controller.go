package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-app/harmonia/domain"
)

type LoginController struct {
	LoginUsecase domain.LoginUsecase
}

func NewLoginController(uc domain.LoginUsecase) *LoginController {
	return &LoginController{LoginUsecase: uc}
}

func (lc *LoginController) Login(c *gin.Context) {
	var request domain.LoginRequest
	if err := c.ShouldBind(&request); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tokens, err := lc.LoginUsecase.Login(c.Request.Context(), &request)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "tokens", tokens, nil)
}
