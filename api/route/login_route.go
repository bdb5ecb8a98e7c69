package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-app/harmonia/api/controller"
	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/usecase"
)

func NewLoginRouter(timeout time.Duration, userRepo domain.UserRepository, tokens usecase.TokenConfig, group *gin.RouterGroup) {
	lc := controller.NewLoginController(usecase.NewLoginUsecase(userRepo, timeout, tokens))
	group.POST("/login", lc.Login)
}
