// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/ShantiHimalaya/shanti-go/internal/application/container"
	"github.com/ShantiHimalaya/shanti-go/internal/presentation/http/handlers"
	"github.com/ShantiHimalaya/shanti-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware(container.SiteConfig.AllowedOrigins))

	// Uploaded gallery originals and webp variants.
	r.Static("/media", container.MediaPath)

	// Initialize handlers
	authHandlers := handlers.NewAuthHandlers(container.AuthService, container.SiteConfig.JWTSecret, container.Logger)
	journeyHandlers := handlers.NewJourneyHandlers(container.JourneyService, container.Logger)
	destinationHandlers := handlers.NewDestinationHandlers(container.DestinationService, container.Logger)
	experienceHandlers := handlers.NewExperienceHandlers(container.ExperienceService, container.Logger)
	mealHandlers := handlers.NewMealHandlers(container.MealService, container.Logger)
	resortHandlers := handlers.NewResortHandlers(container.ResortService, container.Logger)
	postHandlers := handlers.NewPostHandlers(container.PostService, container.Logger)
	galleryHandlers := handlers.NewGalleryHandlers(container.GalleryService, container.Logger)
	categoryHandlers := handlers.NewCategoryHandlers(container.CategoryService, container.Logger)
	enquiryHandlers := handlers.NewEnquiryHandlers(container.EnquiryService, container.Logger)
	draftHandlers := handlers.NewDraftHandlers(container.DraftService, container.Logger)
	changesHandlers := handlers.NewChangesHandlers(container.ChangeBus, container.AdminFeed, container.Logger)

	api := r.Group("/api/v1")
	{
		// Authentication
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandlers.PostLogin)
			auth.POST("/logout", authHandlers.PostLogout)
			auth.GET("/status", authHandlers.GetAuthStatus)
		}

		// Public catalog reads
		api.GET("/journeys", journeyHandlers.GetJourneys)
		api.GET("/journeys/:id", journeyHandlers.GetJourneyByID)
		api.GET("/journeys/:id/days", journeyHandlers.GetJourneyDays)
		api.GET("/destinations", destinationHandlers.GetDestinations)
		api.GET("/destinations/:id", destinationHandlers.GetDestinationByID)
		api.GET("/destinations/slug/:slug", destinationHandlers.GetDestinationBySlug)
		api.GET("/experiences", experienceHandlers.GetExperiences)
		api.GET("/experiences/:id", experienceHandlers.GetExperienceByID)
		api.GET("/meal-items", mealHandlers.GetMealItems)
		api.GET("/meal-items/:id", mealHandlers.GetMealItemByID)
		api.GET("/dining-schedule", mealHandlers.GetDiningSchedule)
		api.GET("/resort-activities", resortHandlers.GetResortActivities)
		api.GET("/resort-activities/:id", resortHandlers.GetResortActivityByID)
		api.GET("/resort-packages", resortHandlers.GetResortPackages)
		api.GET("/resort-packages/:id", resortHandlers.GetResortPackageByID)
		api.GET("/posts", postHandlers.GetPosts)
		api.GET("/posts/:id", postHandlers.GetPostByID)
		api.GET("/gallery", galleryHandlers.GetGalleryImages)
		api.GET("/gallery/:id", galleryHandlers.GetGalleryImageByID)
		api.GET("/categories", categoryHandlers.GetCategories)

		// Public enquiry intake and live change stream
		api.POST("/enquiries", enquiryHandlers.PostEnquiry)
		api.GET("/changes/sse", changesHandlers.GetSSE)

		// Back-office routes
		admin := api.Group("/admin")
		admin.Use(authHandlers.AuthMiddleware())
		{
			admin.POST("/draft", draftHandlers.PostDraft)
			admin.GET("/changes/ws", changesHandlers.GetAdminFeed)

			admin.POST("/journeys", journeyHandlers.CreateJourney)
			admin.PUT("/journeys/:id", journeyHandlers.UpdateJourney)
			admin.DELETE("/journeys/:id", journeyHandlers.DeleteJourney)
			admin.POST("/journeys/:id/days", journeyHandlers.CreateJourneyDay)
			admin.PUT("/journeys/:id/days/:dayId", journeyHandlers.UpdateJourneyDay)
			admin.DELETE("/journeys/:id/days/:dayId", journeyHandlers.DeleteJourneyDay)

			admin.POST("/destinations", destinationHandlers.CreateDestination)
			admin.PUT("/destinations/:id", destinationHandlers.UpdateDestination)
			admin.DELETE("/destinations/:id", destinationHandlers.DeleteDestination)

			admin.POST("/experiences", experienceHandlers.CreateExperience)
			admin.PUT("/experiences/:id", experienceHandlers.UpdateExperience)
			admin.DELETE("/experiences/:id", experienceHandlers.DeleteExperience)

			admin.POST("/meal-items", mealHandlers.CreateMealItem)
			admin.PUT("/meal-items/:id", mealHandlers.UpdateMealItem)
			admin.DELETE("/meal-items/:id", mealHandlers.DeleteMealItem)
			admin.PUT("/dining-schedule/:id", mealHandlers.UpdateDiningSchedule)

			admin.POST("/resort-activities", resortHandlers.CreateResortActivity)
			admin.PUT("/resort-activities/:id", resortHandlers.UpdateResortActivity)
			admin.DELETE("/resort-activities/:id", resortHandlers.DeleteResortActivity)

			admin.POST("/resort-packages", resortHandlers.CreateResortPackage)
			admin.PUT("/resort-packages/:id", resortHandlers.UpdateResortPackage)
			admin.DELETE("/resort-packages/:id", resortHandlers.DeleteResortPackage)

			admin.POST("/posts", postHandlers.CreatePost)
			admin.PUT("/posts/:id", postHandlers.UpdatePost)
			admin.DELETE("/posts/:id", postHandlers.DeletePost)

			admin.POST("/gallery", galleryHandlers.CreateGalleryImage)
			admin.PUT("/gallery/:id", galleryHandlers.UpdateGalleryImage)
			admin.DELETE("/gallery/:id", galleryHandlers.DeleteGalleryImage)

			admin.POST("/categories", categoryHandlers.CreateCategory)
			// Category and enquiry deletion are admin-only: one tears a
			// value out of the shared taxonomy, the other destroys
			// visitor correspondence.
			admin.DELETE("/categories/:id", authHandlers.AdminOnlyMiddleware(), categoryHandlers.DeleteCategory)

			admin.GET("/enquiries", enquiryHandlers.GetEnquiries)
			admin.GET("/enquiries/:id", enquiryHandlers.GetEnquiryByID)
			admin.PUT("/enquiries/:id/status", enquiryHandlers.UpdateEnquiryStatus)
			admin.PUT("/enquiries/:id/read", enquiryHandlers.MarkEnquiryRead)
			admin.DELETE("/enquiries/:id", authHandlers.AdminOnlyMiddleware(), enquiryHandlers.DeleteEnquiry)
		}
	}

	return r
}
