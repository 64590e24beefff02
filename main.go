// File: salonapi/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonapi/config"
	"salonapi/cron"
	"salonapi/database"
	bookingRepo "salonapi/database/repository/booking"
	paymentRepo "salonapi/database/repository/payment"
	ratingRepo "salonapi/database/repository/rating"
	serviceRepo "salonapi/database/repository/service"
	slotRepo "salonapi/database/repository/slot"
	userRepoPkg "salonapi/database/repository/user"
	"salonapi/handlers"
	"salonapi/routes"
	"salonapi/services/availability"
	"salonapi/services/notification"
	"salonapi/services/payment"
	"salonapi/services/report"
	"salonapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	reportLoc, err := time.LoadLocation(config.AppConfig.ReportTimeZone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid report time zone %q: %v", config.AppConfig.ReportTimeZone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	slots := slotRepo.NewMongoSlotRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	payments := paymentRepo.NewMongoPaymentRepo()
	users := userRepoPkg.NewMongoUserRepo()
	services := serviceRepo.NewMongoServiceRepo()
	ratings := ratingRepo.NewMongoRatingRepo()

	// services.
	mailer := notification.NewSMTPMailer()
	if err := mailer.Verify(); err != nil {
		logger.Sugar().Warnf("main: SMTP verification failed, emails may not be delivered: %v", err)
	}

	resolver := &availability.DefaultResolver{
		Slots:    slots,
		Bookings: bookings,
	}

	paymentService := &payment.DefaultPaymentService{
		Bookings: bookings,
		Payments: payments,
		Users:    users,
		Services: services,
		Mailer:   mailer,
		Logger:   logger,
	}

	reportService := &report.DefaultReportService{
		Payments: payments,
		Bookings: bookings,
		Ratings:  ratings,
		Location: reportLoc,
		Logger:   logger,
	}

	// Register routes with the assembled handlers.
	routes.RegisterRoutes(router, routes.Handlers{
		Availability:  &handlers.AvailabilityHandler{Resolver: resolver, Cache: utils.GetCacheClient()},
		Payments:      &handlers.PaymentHandler{Payments: paymentService},
		Reports:       &handlers.ReportHandler{Reports: reportService},
		StripeWebhook: &handlers.StripeWebhookHandler{Payments: paymentService},
	})

	// Reminder pipeline: the worker consumes the queue, the scheduler
	// fills it from tomorrow's bookings.
	cron.InitReminderWorker(mailer)
	scheduler := &cron.ReminderScheduler{
		Bookings: bookings,
		Users:    users,
		Services: services,
		Location: reportLoc,
	}
	scheduler.Start()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "4000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
