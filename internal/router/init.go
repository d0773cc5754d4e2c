package router

import (
	"github.com/carhub-dev/carhub-api/internal/application"
	"github.com/carhub-dev/carhub-api/internal/container"
	"github.com/carhub-dev/carhub-api/internal/infrastructure/cache"
	"github.com/carhub-dev/carhub-api/internal/infrastructure/mongodb"
	handlers "github.com/carhub-dev/carhub-api/internal/interface/http"
	"github.com/carhub-dev/carhub-api/internal/router/modules"
	"github.com/carhub-dev/carhub-api/pkg/helpers"
)

// InitModules builds the repository/service/handler graph from the
// container singletons and registers every feature module.
// Call once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetMongo()

	userRepo := mongodb.NewUserRepository(db)
	listingRepo := mongodb.NewListingRepository(db)

	var listingCache *cache.ListingCache
	if rdb := container.GetRedis(); rdb != nil {
		listingCache = cache.NewListingCache(rdb, cfg.ListingCacheTTL)
	}

	accountSvc := application.NewAccountService(userRepo, container.GetJWT(), logger, container.GetRabbitPub(), cfg.MailSendEnabled)
	listingSvc := application.NewListingService(listingRepo, listingCache, logger)
	searchSvc := application.NewSearchService(listingRepo, logger)

	accountHandler := handlers.NewAccountHandler(accountSvc, logger)
	listingHandler := handlers.NewListingHandler(listingSvc, searchSvc, logger)

	var uploader handlers.ObjectUploader
	if gcs := container.GetGCS(); gcs != nil && cfg.GCSBucket != "" {
		uploader = &helpers.GCSUploader{Client: gcs, Bucket: cfg.GCSBucket}
	}
	uploadHandler := handlers.NewUploadHandler(uploader, logger)

	r.Add(modules.NewAccountModule(accountHandler))
	r.Add(modules.NewListingModule(listingHandler, accountSvc, container.GetJWT()))
	r.Add(modules.NewUploadModule(uploadHandler, accountSvc, container.GetJWT()))
}
