package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cisnebranco/grooming-os/internal/audit"
	"github.com/cisnebranco/grooming-os/internal/config"
	"github.com/cisnebranco/grooming-os/internal/handlers"
	infraRepo "github.com/cisnebranco/grooming-os/internal/infra/repository"
	"github.com/cisnebranco/grooming-os/internal/middleware"
	"github.com/cisnebranco/grooming-os/internal/models"
	"github.com/cisnebranco/grooming-os/internal/notify"
	"github.com/cisnebranco/grooming-os/internal/realtime"
	ucAppointment "github.com/cisnebranco/grooming-os/internal/usecase/appointment"
	ucAvailability "github.com/cisnebranco/grooming-os/internal/usecase/availability"
	ucOrder "github.com/cisnebranco/grooming-os/internal/usecase/order"
	ucPayment "github.com/cisnebranco/grooming-os/internal/usecase/payment"
)

type Deps struct {
	DB          *gorm.DB
	Config      *config.Config
	Hub         *realtime.Hub
	Broadcaster *realtime.Broadcaster
	Notifier    *notify.Dispatcher
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	db := deps.DB
	cfg := deps.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(db)
	orderRepo := infraRepo.NewOrderGormRepository(db)
	paymentRepo := infraRepo.NewPaymentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	availabilityEngine := ucAvailability.NewEngine(availabilityRepo)
	manageWindowsUC := ucAvailability.NewManageWindows(availabilityRepo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		availabilityEngine,
		auditDispatcher,
	)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		availabilityEngine,
		auditDispatcher,
	)
	slotsUC := ucAppointment.NewGetAvailableSlots(
		appointmentRepo,
		availabilityEngine,
	)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	checkInUC := ucOrder.NewCheckIn(
		orderRepo,
		deps.Notifier,
		auditDispatcher,
		deps.Broadcaster,
	)
	updateStatusUC := ucOrder.NewUpdateStatus(
		orderRepo,
		deps.Notifier,
		auditDispatcher,
		deps.Broadcaster,
	)
	assignGroomerUC := ucOrder.NewAssignGroomer(
		orderRepo,
		auditDispatcher,
		deps.Broadcaster,
	)
	adjustPriceUC := ucOrder.NewAdjustItemPrice(
		orderRepo,
		auditDispatcher,
		deps.Broadcaster,
	)
	enforceAccessUC := ucOrder.NewEnforceAccess(orderRepo)
	listOrdersUC := ucOrder.NewListOrders(orderRepo)

	convertUC := ucAppointment.NewConvertToOrder(
		appointmentRepo,
		checkInUC,
		auditDispatcher,
	)

	recordPaymentUC := ucPayment.NewRecordPayment(
		paymentRepo,
		auditDispatcher,
		deps.Broadcaster,
	)
	refundPaymentUC := ucPayment.NewRefundPayment(
		paymentRepo,
		auditDispatcher,
		deps.Broadcaster,
	)
	paymentHistoryUC := ucPayment.NewPaymentHistory(paymentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	clientHandler := handlers.NewClientHandler(db)
	petHandler := handlers.NewPetHandler(db)
	breedHandler := handlers.NewBreedHandler(db)
	groomerHandler := handlers.NewGroomerHandler(db)
	serviceTypeHandler := handlers.NewServiceTypeHandler(db)
	pricingHandler := handlers.NewPricingHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(manageWindowsUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		slotsUC,
		listAppointmentsUC,
		convertUC,
	)

	orderHandler := handlers.NewOrderHandler(
		checkInUC,
		updateStatusUC,
		assignGroomerUC,
		adjustPriceUC,
		enforceAccessUC,
		listOrdersUC,
	)

	paymentHandler := handlers.NewPaymentHandler(
		recordPaymentUC,
		refundPaymentUC,
		paymentHistoryUC,
	)

	evidenceHandler := handlers.NewEvidenceHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	wsHandler := handlers.NewWSHandler(deps.Hub)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			staff := secured.Group("/")
			staff.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleReceptionist))
			{
				// ------------------------------
				// CADASTROS
				// ------------------------------
				staff.GET("/clients", clientHandler.List)
				staff.POST("/clients", clientHandler.Create)
				staff.GET("/clients/:id", clientHandler.Get)
				staff.PATCH("/clients/:id", clientHandler.Update)
				staff.DELETE("/clients/:id", clientHandler.Deactivate)

				staff.GET("/pets", petHandler.List)
				staff.POST("/pets", petHandler.Create)
				staff.GET("/pets/:id", petHandler.Get)
				staff.PATCH("/pets/:id", petHandler.Update)
				staff.DELETE("/pets/:id", petHandler.Deactivate)

				staff.GET("/breeds", breedHandler.List)
				staff.POST("/breeds", breedHandler.Create)

				staff.GET("/groomers", groomerHandler.List)
				staff.POST("/groomers", groomerHandler.Create)
				staff.PATCH("/groomers/:id", groomerHandler.Update)

				staff.GET("/service-types", serviceTypeHandler.List)
				staff.POST("/service-types", serviceTypeHandler.Create)
				staff.PATCH("/service-types/:id", serviceTypeHandler.Update)

				staff.GET("/pricing", pricingHandler.ListMatrix)
				staff.PUT("/pricing", pricingHandler.UpsertMatrix)
				staff.GET("/breed-prices", pricingHandler.ListBreedPrices)
				staff.PUT("/breed-prices", pricingHandler.UpsertBreedPrice)
				staff.DELETE("/breed-prices/:id", pricingHandler.DeleteBreedPrice)

				// ------------------------------
				// DISPONIBILIDADE
				// ------------------------------
				staff.GET("/groomers/:id/availability", availabilityHandler.List)
				staff.POST("/groomers/:id/availability", availabilityHandler.Create)
				staff.DELETE("/availability/:window_id", availabilityHandler.Deactivate)
				staff.GET("/groomers/:id/slots", appointmentHandler.Slots)

				// ------------------------------
				// AGENDAMENTOS
				// ------------------------------
				staff.POST("/appointments", appointmentHandler.Create)
				staff.GET("/appointments", appointmentHandler.List)
				staff.PATCH("/appointments/:id", appointmentHandler.Update)
				staff.POST("/appointments/:id/convert", appointmentHandler.Convert)

				// ------------------------------
				// CHECK-IN / REATRIBUIÇÃO / PREÇO
				// ------------------------------
				staff.POST("/orders", orderHandler.CheckIn)
				staff.PATCH("/orders/:id/groomer", orderHandler.AssignGroomer)
				staff.PATCH("/orders/:id/items/:item_id/price", orderHandler.AdjustItemPrice)

				// ------------------------------
				// PAGAMENTOS
				// ------------------------------
				staff.POST("/orders/:id/payments", paymentHandler.Record)
				staff.POST("/orders/:id/payments/refund", paymentHandler.Refund)
				staff.GET("/orders/:id/payments", paymentHandler.History)

				staff.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// ORDENS (groomers veem as próprias)
			// ------------------------------
			secured.GET("/orders", orderHandler.List)
			secured.GET("/orders/:id", orderHandler.Get)
			secured.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

			secured.POST("/orders/:id/photos", evidenceHandler.AddPhoto)
			secured.GET("/orders/:id/photos", evidenceHandler.ListPhotos)
			secured.PUT("/orders/:id/checklist", evidenceHandler.UpsertChecklist)
			secured.GET("/orders/:id/checklist", evidenceHandler.GetChecklist)

			secured.GET("/ws", wsHandler.Subscribe)
		}
	}
}
