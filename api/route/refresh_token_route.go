package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-app/harmonia/api/controller"
	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/usecase"
)

func NewRefreshTokenRouter(timeout time.Duration, userRepo domain.UserRepository, tokens usecase.TokenConfig, group *gin.RouterGroup) {
	rtc := controller.NewRefreshTokenController(usecase.NewRefreshTokenUsecase(userRepo, timeout, tokens))
	group.POST("/refresh", rtc.RefreshToken)
}
