package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-app/harmonia/api/controller"
	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/usecase"
)

func NewSignupRouter(timeout time.Duration, userRepo domain.UserRepository, tokens usecase.TokenConfig, group *gin.RouterGroup) {
	sc := controller.NewSignupController(usecase.NewSignupUsecase(userRepo, timeout, tokens))
	group.POST("/signup", sc.Signup)
}
