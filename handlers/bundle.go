package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Business endpoints.
	RegisterBusinessHandler       gin.HandlerFunc
	AuthenticateBusinessHandler   gin.HandlerFunc
	GetBusinessHandler            gin.HandlerFunc
	UpdateBusinessSettingsHandler gin.HandlerFunc

	// Auth endpoints.
	LogoutHandler gin.HandlerFunc

	// Staff endpoints.
	CreateStaffHandler          gin.HandlerFunc
	AuthenticateStaffHandler    gin.HandlerFunc
	GetStaffHandler             gin.HandlerFunc
	ListStaffHandler            gin.HandlerFunc
	UpdateStaffHandler          gin.HandlerFunc
	DeleteStaffHandler          gin.HandlerFunc
	SetStaffScheduleHandler     gin.HandlerFunc
	GetStaffScheduleHandler     gin.HandlerFunc
	AddUnavailabilityHandler    gin.HandlerFunc
	ListUnavailabilityHandler   gin.HandlerFunc
	RemoveUnavailabilityHandler gin.HandlerFunc
	PublicListStaffHandler      gin.HandlerFunc

	// Catalogue endpoints.
	CreateServiceHandler     gin.HandlerFunc
	GetServiceHandler        gin.HandlerFunc
	ListServicesHandler      gin.HandlerFunc
	UpdateServiceHandler     gin.HandlerFunc
	DeleteServiceHandler     gin.HandlerFunc
	PublicListServicesHandler gin.HandlerFunc

	// Client endpoints.
	CreateClientHandler       gin.HandlerFunc
	GetClientHandler          gin.HandlerFunc
	ListClientsHandler        gin.HandlerFunc
	UpdateClientHandler       gin.HandlerFunc
	DeleteClientHandler       gin.HandlerFunc
	ClientAppointmentsHandler gin.HandlerFunc

	// Availability endpoints.
	GetDaySlotsHandler        gin.HandlerFunc
	GetWeekSlotsHandler       gin.HandlerFunc
	PublicAvailabilityHandler gin.HandlerFunc

	// Booking endpoints.
	InitiateSessionHandler gin.HandlerFunc
	UpdateSessionHandler   gin.HandlerFunc
	ConfirmSessionHandler  gin.HandlerFunc
	CancelSessionHandler   gin.HandlerFunc
	BookHandler            gin.HandlerFunc
	GetAppointmentHandler  gin.HandlerFunc
	ListAppointmentsHandler gin.HandlerFunc
	AcceptHandler          gin.HandlerFunc
	RejectHandler          gin.HandlerFunc
	CancelHandler          gin.HandlerFunc
	CompleteHandler        gin.HandlerFunc
	NoShowHandler          gin.HandlerFunc

	// Operational endpoints.
	HealthHandler gin.HandlerFunc
}
