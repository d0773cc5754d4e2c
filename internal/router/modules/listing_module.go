package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/carhub-dev/carhub-api/internal/application"
	handlers "github.com/carhub-dev/carhub-api/internal/interface/http"
	"github.com/carhub-dev/carhub-api/internal/interface/middleware"
	"github.com/carhub-dev/carhub-api/pkg/helpers"
)

// ListingModule wires listing CRUD and search.
// Public: GET /api/mycars, GET /api/cars/:id, POST /api/search
// Protected: POST /api/createproduct, PUT /api/cars/:id, DELETE /api/cars/:id
type ListingModule struct {
	Handler  *handlers.ListingHandler
	Accounts *application.AccountService
	JWT      *helpers.JWTManager
}

func NewListingModule(h *handlers.ListingHandler, accounts *application.AccountService, jwt *helpers.JWTManager) *ListingModule {
	return &ListingModule{Handler: h, Accounts: accounts, JWT: jwt}
}

func (m *ListingModule) Register(rg *gin.RouterGroup) {
	rg.GET("/mycars", m.Handler.MyCars)
	rg.GET("/cars/:id", m.Handler.GetCar)
	rg.POST("/search", m.Handler.SearchCars)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Accounts, m.JWT))
	{
		auth.POST("/createproduct", m.Handler.CreateProduct)
		auth.PUT("/cars/:id", m.Handler.UpdateCar)
		auth.DELETE("/cars/:id", m.Handler.DeleteCar)
	}
}
