// Package container provides dependency injection for all singleton services
package container

import (
	"database/sql"
	"path/filepath"

	"github.com/ShantiHimalaya/shanti-go/internal/application/services"
	persistence "github.com/ShantiHimalaya/shanti-go/internal/infrastructure/persistence/catalog"

	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/ai"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/email"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/media"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/messaging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/site"
	"github.com/ShantiHimalaya/shanti-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application services (stateless singletons)
	JourneyService     *services.JourneyService
	DestinationService *services.DestinationService
	ExperienceService  *services.ExperienceService
	MealService        *services.MealService
	ResortService      *services.ResortService
	PostService        *services.PostService
	GalleryService     *services.GalleryService
	CategoryService    *services.CategoryService
	EnquiryService     *services.EnquiryService
	DraftService       *services.DraftService
	AuthService        *services.AuthService

	// Infrastructure
	SiteConfig *site.Config
	Logger     *logging.ChanneledLogger
	ChangeBus  *messaging.ChangeBus
	AdminFeed  *messaging.AdminFeed
	MediaPath  string
}

// NewContainer creates and wires all singleton services. The enquiry
// mailer may be nil when no Resend key is configured; enquiry intake
// still works, it just skips the notification.
func NewContainer(db *sql.DB, siteConfig *site.Config, logger *logging.ChanneledLogger, mediaPath string) (*Container, error) {
	bus := messaging.NewChangeBus(config.ChangeChannelBuffer, logger)
	adminFeed := messaging.NewAdminFeed(bus, logger)

	processor := media.NewImageProcessor(mediaPath, config.GalleryImageSizes, int(config.GalleryWebPQuality))

	generator := ai.NewContentService(ai.Config{
		APIKey:    siteConfig.OpenAIAPIKey,
		Model:     config.AIModel,
		MaxTokens: int64(config.AIMaxTokens),
		Timeout:   config.AIRequestTimeout,
		BaseURL:   siteConfig.OpenAIBaseURL,
	}, logger)

	var mailer email.Service
	if siteConfig.ResendAPIKey != "" {
		var err error
		mailer, err = email.NewService(email.Config{
			APIKey:     siteConfig.ResendAPIKey,
			FromEmail:  siteConfig.EmailFrom,
			ToEmail:    siteConfig.EmailTo,
			Attempts:   uint(config.EmailSendAttempts),
			RetryDelay: config.EmailRetryDelay,
		}, logger)
		if err != nil {
			return nil, err
		}
	}

	journeyRepo := persistence.NewJourneyRepository(db, logger)
	journeyDayRepo := persistence.NewJourneyDayRepository(db, logger)
	destinationRepo := persistence.NewDestinationRepository(db, logger)
	experienceRepo := persistence.NewExperienceRepository(db, logger)
	mealItemRepo := persistence.NewMealItemRepository(db, logger)
	diningRepo := persistence.NewDiningScheduleRepository(db, logger)
	activityRepo := persistence.NewResortActivityRepository(db, logger)
	packageRepo := persistence.NewResortPackageRepository(db, logger)
	postRepo := persistence.NewPostRepository(db, logger)
	galleryRepo := persistence.NewGalleryRepository(db, logger)
	categoryRepo := persistence.NewCategoryRepository(db, logger)
	enquiryRepo := persistence.NewEnquiryRepository(db, logger)

	return &Container{
		JourneyService:     services.NewJourneyService(journeyRepo, journeyDayRepo, bus),
		DestinationService: services.NewDestinationService(destinationRepo, bus),
		ExperienceService:  services.NewExperienceService(experienceRepo, bus),
		MealService:        services.NewMealService(mealItemRepo, diningRepo, bus),
		ResortService:      services.NewResortService(activityRepo, packageRepo, bus),
		PostService:        services.NewPostService(postRepo, bus),
		GalleryService:     services.NewGalleryService(galleryRepo, processor, bus, logger),
		CategoryService:    services.NewCategoryService(categoryRepo, bus),
		EnquiryService:     services.NewEnquiryService(enquiryRepo, mailer, bus, logger),
		DraftService:       services.NewDraftService(generator, logger),
		AuthService:        services.NewAuthService(siteConfig, logger),

		SiteConfig: siteConfig,
		Logger:     logger,
		ChangeBus:  bus,
		AdminFeed:  adminFeed,
		MediaPath:  filepath.Clean(mediaPath),
	}, nil
}
