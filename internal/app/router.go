// internal/app/router.go
package app

import (
	catalogHandler "humsafar-service/internal/handlers/catalog"
	contractHandler "humsafar-service/internal/handlers/contract"
	identityHandler "humsafar-service/internal/handlers/identity"
	profileHandler "humsafar-service/internal/handlers/profile"
	referenceHandler "humsafar-service/internal/handlers/reference"
	vehicleHandler "humsafar-service/internal/handlers/vehicle"
	"humsafar-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	ReferenceHandler *referenceHandler.ReferenceHandler
	IdentityHandler  *identityHandler.IdentityHandler
	ProfileHandler   *profileHandler.ProfileHandler
	CatalogHandler   *catalogHandler.CatalogHandler
	VehicleHandler   *vehicleHandler.VehicleHandler
	ContractHandler  *contractHandler.ContractHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Reference Data ====================
	// Constant tables; public so clients can render pickers before login.
	reference := api.Group("/reference")
	{
		reference.GET("/vehicle-types", h.ReferenceHandler.ListVehicleTypes)
		reference.GET("/vehicle-statuses", h.ReferenceHandler.ListVehicleStatuses)
		reference.GET("/roles", h.ReferenceHandler.ListRoles)
		reference.GET("/colors", h.ReferenceHandler.ListColors)
		reference.GET("/towns", h.ReferenceHandler.ListTowns)
	}

	// ==================== Identities ====================
	identities := api.Group("/identities")
	identities.Use(h.AuthMiddleware.Auth())
	{
		identities.GET("/:id", h.IdentityHandler.GetIdentity)
		identities.DELETE("/:id", h.IdentityHandler.DeleteIdentity)
	}

	// ==================== Profiles ====================
	profiles := api.Group("/profiles")
	profiles.Use(h.AuthMiddleware.Auth())
	{
		profiles.GET("", h.ProfileHandler.ListProfiles)
		profiles.GET("/me", h.ProfileHandler.GetOwnProfile)
		profiles.GET("/:id", h.ProfileHandler.GetProfile)
		profiles.POST("", h.ProfileHandler.CreateProfile)
		profiles.PATCH("/:id", h.ProfileHandler.UpdateProfile)
		profiles.POST("/:id/deactivate", h.ProfileHandler.DeactivateProfile)
		profiles.DELETE("/:id", h.ProfileHandler.DeleteProfile)
	}

	// ==================== Vehicle Models ====================
	models := api.Group("/models")
	models.Use(h.AuthMiddleware.Auth())
	{
		models.GET("", h.CatalogHandler.ListModels)
		models.GET("/:id", h.CatalogHandler.GetModel)
		models.POST("", h.CatalogHandler.CreateModel)
		models.PATCH("/:id", h.CatalogHandler.UpdateModel)
		models.DELETE("/:id", h.CatalogHandler.DeleteModel)
	}

	// ==================== Vehicles ====================
	vehicles := api.Group("/vehicles")
	vehicles.Use(h.AuthMiddleware.Auth())
	{
		vehicles.GET("", h.VehicleHandler.ListVehicles)
		vehicles.GET("/:id", h.VehicleHandler.GetVehicle)
		vehicles.GET("/registration/:registration", h.VehicleHandler.GetVehicleByRegistration)
		vehicles.POST("", h.VehicleHandler.RegisterVehicle)
		vehicles.PATCH("/:id/status", h.VehicleHandler.UpdateStatus)
		vehicles.DELETE("/:id", h.VehicleHandler.DeleteVehicle)
	}

	// ==================== Contracts ====================
	contracts := api.Group("/contracts")
	contracts.Use(h.AuthMiddleware.Auth())
	{
		contracts.GET("", h.ContractHandler.ListContracts)
		contracts.GET("/:id", h.ContractHandler.GetContract)
		contracts.POST("", h.ContractHandler.CreateContract)
		contracts.POST("/:id/terminate", h.ContractHandler.TerminateContract)
		contracts.DELETE("/:id", h.ContractHandler.DeleteContract)
	}
}
