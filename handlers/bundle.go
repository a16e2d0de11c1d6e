package handlers

import (
	providerRepoPkg "hudumahub/database/repository/provider"
	userRepoPkg "hudumahub/database/repository/user"
)

// HandlerBundle aggregates the handlers and the repositories the auth
// middleware needs. Wired once in main and passed to route registration.
type HandlerBundle struct {
	UserRepo     userRepoPkg.UserRepository
	ProviderRepo providerRepoPkg.ProviderRepository

	User         *UserHandler
	Provider     *ProviderHandler
	Booking      *BookingHandler
	Notification *NotificationHandler
	AI           *AIHandler
}
