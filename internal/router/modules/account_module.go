package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/carhub-dev/carhub-api/internal/container"
	handlers "github.com/carhub-dev/carhub-api/internal/interface/http"
	"github.com/carhub-dev/carhub-api/internal/interface/middleware"
)

// AccountModule wires the public registration and login routes.
// Route names keep the shape the CarHub frontend calls.
type AccountModule struct {
	Handler *handlers.AccountHandler
}

func NewAccountModule(h *handlers.AccountHandler) *AccountModule {
	return &AccountModule{Handler: h}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	if !container.GetConfig().RateLimitEnabled {
		rdb = nil
	}
	registerLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/CreateUser", registerLimiter, m.Handler.CreateUser)
	rg.POST("/LoginUser", loginLimiter, m.Handler.Login)
}
