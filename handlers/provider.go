package handlers

import (
	"net/http"
	"strconv"

	"hudumahub/models"
	"hudumahub/services/matching"
	provider "hudumahub/services/provider"
	"hudumahub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes provider account and discovery endpoints.
type ProviderHandler struct {
	ProviderService provider.ProviderService
	MatchingService matching.MatchingService
}

// RegisterProviderHandler handles POST /api/providers/register.
func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req provider.RegistrationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.ProviderService.Register(req)
	if err != nil {
		logger.Error("Provider registration failed", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// AuthenticateProviderHandler handles POST /api/providers/login.
func (h *ProviderHandler) AuthenticateProviderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.ProviderService.Authenticate(req.Email, req.Password)
	if err != nil {
		logger.Warn("Provider authentication failed", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetProviderByIDHandler handles GET /api/providers/id/:id. Public view for
// customers browsing providers.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	id := c.Param("id")
	p, err := h.ProviderService.GetProviderByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetProviderProfileHandler handles GET /api/providers/me.
func (h *ProviderHandler) GetProviderProfileHandler(c *gin.Context) {
	providerID := c.GetString("providerID")
	p, err := h.ProviderService.GetProviderByID(providerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProviderProfileHandler handles PUT /api/providers/me.
func (h *ProviderHandler) UpdateProviderProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	providerID := c.GetString("providerID")

	var req models.ServiceProvider
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = providerID

	updated, err := h.ProviderService.UpdateProfile(req)
	if err != nil {
		logger.Error("Failed to update provider profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetAutoAcceptHandler handles PUT /api/providers/me/auto-accept.
func (h *ProviderHandler) SetAutoAcceptHandler(c *gin.Context) {
	providerID := c.GetString("providerID")

	var req struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.ProviderService.SetAutoAccept(providerID, *req.Enabled)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateProviderFCMTokenHandler handles PUT /api/providers/me/fcm-token.
func (h *ProviderHandler) UpdateProviderFCMTokenHandler(c *gin.Context) {
	providerID := c.GetString("providerID")

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.ProviderService.UpdateFCMToken(providerID, req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token updated"})
}

// NearbyProvidersHandler handles GET /api/providers/nearby. Query params:
// serviceType, city, lat, lng.
func (h *ProviderHandler) NearbyProvidersHandler(c *gin.Context) {
	logger := utils.GetLogger()

	serviceType := c.Query("serviceType")
	city := c.Query("city")

	var origin models.GeoPoint
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng must be numeric"})
			return
		}
		origin = models.NewGeoPoint(lng, lat)
	}

	matches, err := h.MatchingService.NearbyProviders(origin, serviceType, city)
	if err != nil {
		logger.Error("Provider search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search providers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": matches})
}
