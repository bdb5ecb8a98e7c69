package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-app/harmonia/domain"
)

type SignupController struct {
	SignupUsecase domain.SignupUsecase
}

func NewSignupController(uc domain.SignupUsecase) *SignupController {
	return &SignupController{SignupUsecase: uc}
}

func (sc *SignupController) Signup(c *gin.Context) {
	var request domain.SignupRequest
	if err := c.ShouldBind(&request); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tokens, err := sc.SignupUsecase.Signup(c.Request.Context(), &request)
	if err != nil {
		DomainErrorResponse(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "tokens", tokens, nil)
}
