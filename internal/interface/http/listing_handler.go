package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/carhub-dev/carhub-api/internal/application"
	"github.com/carhub-dev/carhub-api/internal/domain/entity"
	"github.com/carhub-dev/carhub-api/pkg/response"
	"github.com/carhub-dev/carhub-api/pkg/validation"
)

type ListingHandler struct {
	Listings *application.ListingService
	Search   *application.SearchService
	Logger   *logrus.Logger
}

func NewListingHandler(listings *application.ListingService, search *application.SearchService, logger *logrus.Logger) *ListingHandler {
	return &ListingHandler{Listings: listings, Search: search, Logger: logger}
}

type createProductRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Tags        application.TagsInput `json:"tags"`
	ImageURLs   []string              `json:"imageUrls"`
}

type updateCarRequest struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	Tags        application.TagsInput `json:"tags"`
	ImageURLs   []string              `json:"imageUrls"`
}

type searchRequest struct {
	UserEmail string `json:"userEmail"`
}

type listingJSON struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	UserEmail   string    `json:"userEmail"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toListingJSON(l *entity.Listing) listingJSON {
	return listingJSON{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Tags:        l.Tags,
		UserEmail:   l.OwnerEmail,
		Images:      l.Images,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toListingJSONs(ls []*entity.Listing) []listingJSON {
	out := make([]listingJSON, 0, len(ls))
	for _, l := range ls {
		out = append(out, toListingJSON(l))
	}
	return out
}

// CreateProduct POST /api/createproduct (auth required)
func (h *ListingHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	owner := c.GetString("userEmail")
	if owner == "" {
		response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	l, err := h.Listings.Create(c.Request.Context(), application.CreateListingInput{
		OwnerEmail:  owner,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Images:      req.ImageURLs,
	})
	if err != nil {
		if ve, ok := application.AsValidationError(err); ok {
			response.Error(c, http.StatusBadRequest, "invalid payload", ve.Fields)
			return
		}
		h.Logger.WithError(err).WithField("owner", owner).Error("product creation failed")
		response.Error(c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	response.OK(c, gin.H{"message": "Product created successfully", "product": toListingJSON(l)})
}

// MyCars GET /api/mycars?email=
func (h *ListingHandler) MyCars(c *gin.Context) {
	email := c.Query("email")
	cars, err := h.Listings.ListByOwner(c.Request.Context(), email)
	if err != nil {
		h.Logger.WithError(err).WithField("email", email).Error("owner listing fetch failed")
		response.Error(c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	response.OK(c, gin.H{"cars": toListingJSONs(cars)})
}

// GetCar GET /api/cars/:id
func (h *ListingHandler) GetCar(c *gin.Context) {
	l, err := h.Listings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrListingNotFound) {
			response.Error(c, http.StatusNotFound, "Car not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("listing_id", c.Param("id")).Error("car fetch failed")
		response.Error(c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	response.OK(c, gin.H{"car": toListingJSON(l)})
}

// UpdateCar PUT /api/cars/:id (auth required)
func (h *ListingHandler) UpdateCar(c *gin.Context) {
	var req updateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	l, err := h.Listings.Update(c.Request.Context(), c.Param("id"), c.GetString("userEmail"), application.UpdateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Images:      req.ImageURLs,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrListingNotFound):
			response.Error(c, http.StatusNotFound, "Car not found", nil)
		case errors.Is(err, application.ErrForbidden):
			response.Error(c, http.StatusForbidden, "You do not own this car", nil)
		default:
			if ve, ok := application.AsValidationError(err); ok {
				response.Error(c, http.StatusBadRequest, "invalid payload", ve.Fields)
				return
			}
			h.Logger.WithError(err).WithField("listing_id", c.Param("id")).Error("car update failed")
			response.Error(c, http.StatusInternalServerError, "Server error", nil)
		}
		return
	}
	response.OK(c, gin.H{"message": "Car updated successfully", "car": toListingJSON(l)})
}

// DeleteCar DELETE /api/cars/:id (auth required)
func (h *ListingHandler) DeleteCar(c *gin.Context) {
	err := h.Listings.Delete(c.Request.Context(), c.Param("id"), c.GetString("userEmail"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrListingNotFound):
			response.Error(c, http.StatusNotFound, "Car not found", nil)
		case errors.Is(err, application.ErrForbidden):
			response.Error(c, http.StatusForbidden, "You do not own this car", nil)
		default:
			h.Logger.WithError(err).WithField("listing_id", c.Param("id")).Error("car delete failed")
			response.Error(c, http.StatusInternalServerError, "Server error", nil)
		}
		return
	}
	response.OK(c, gin.H{"message": "Car deleted successfully"})
}

// SearchCars POST /api/search?q=&limit=
func (h *ListingHandler) SearchCars(c *gin.Context) {
	var req searchRequest
	_ = c.ShouldBindJSON(&req) // a missing body surfaces as a missing owner below

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	results, err := h.Search.Search(c.Request.Context(), c.Query("q"), req.UserEmail, limit)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrMissingQuery):
			response.Error(c, http.StatusBadRequest, "Query parameter is required", nil)
		case errors.Is(err, application.ErrMissingOwner):
			response.Error(c, http.StatusBadRequest, "User email is required", nil)
		case errors.Is(err, application.ErrNoResults):
			response.Error(c, http.StatusNotFound, "No products found.", nil)
		default:
			h.Logger.WithError(err).WithField("query", c.Query("q")).Error("search failed")
			response.Error(c, http.StatusInternalServerError, "Server error", nil)
		}
		return
	}
	response.OK(c, gin.H{"results": toListingJSONs(results)})
}
