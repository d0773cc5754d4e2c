package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/carhub-dev/carhub-api/internal/application"
	handlers "github.com/carhub-dev/carhub-api/internal/interface/http"
	"github.com/carhub-dev/carhub-api/internal/interface/middleware"
	"github.com/carhub-dev/carhub-api/pkg/helpers"
)

// UploadModule wires the protected image upload route.
type UploadModule struct {
	Handler  *handlers.UploadHandler
	Accounts *application.AccountService
	JWT      *helpers.JWTManager
}

func NewUploadModule(h *handlers.UploadHandler, accounts *application.AccountService, jwt *helpers.JWTManager) *UploadModule {
	return &UploadModule{Handler: h, Accounts: accounts, JWT: jwt}
}

func (m *UploadModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Accounts, m.JWT))
	auth.POST("/upload", m.Handler.Upload)
}
