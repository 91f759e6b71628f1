package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"volunteerhub_backend/internals/configs"
	database "volunteerhub_backend/internals/databases"
	attRepo "volunteerhub_backend/internals/features/attendance/attendance/repository"
	attService "volunteerhub_backend/internals/features/attendance/attendance/service"
	eventRepo "volunteerhub_backend/internals/features/events/events/repository"
	eventScheduler "volunteerhub_backend/internals/features/events/events/scheduler"
	eventService "volunteerhub_backend/internals/features/events/events/service"
	regRepo "volunteerhub_backend/internals/features/events/registrations/repository"
	regService "volunteerhub_backend/internals/features/events/registrations/service"
	dashService "volunteerhub_backend/internals/features/home/dashboard/service"
	authService "volunteerhub_backend/internals/features/users/auth/service"
	userRepo "volunteerhub_backend/internals/features/users/user/repository"
	userService "volunteerhub_backend/internals/features/users/user/service"
	middlewares "volunteerhub_backend/internals/middlewares"
	routes "volunteerhub_backend/internals/route"
	"volunteerhub_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// compression + 304 caching for the read-heavy listing endpoints
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// store selection: PostgreSQL via GORM, or the seeded in-memory mock
	var (
		users         userRepo.UserRepository
		events        eventRepo.EventRepository
		registrations regRepo.RegistrationRepository
		attendance    attRepo.AttendanceRepository
	)
	if configs.UseMockDB {
		users = userRepo.NewMemoryUserRepository()
		events = eventRepo.NewMemoryEventRepository()
		registrations = regRepo.NewMemoryRegistrationRepository()
		attendance = attRepo.NewMemoryAttendanceRepository()
		seeds.Run(users, events, registrations, attendance)
	} else {
		database.ConnectDB()
		database.TunePool()
		users = userRepo.NewGormUserRepository(database.DB)
		events = eventRepo.NewGormEventRepository(database.DB)
		registrations = regRepo.NewGormRegistrationRepository(database.DB)
		attendance = attRepo.NewGormAttendanceRepository(database.DB)
	}

	userSvc := userService.NewUserService(users, events, registrations, attendance)
	eventSvc := eventService.NewEventService(events, users, registrations, attendance, configs.DefaultMaxVolunteers)

	services := &routes.Services{
		Auth:          authService.NewAuthService(users),
		Users:         userSvc,
		Events:        eventSvc,
		Registrations: regService.NewRegistrationService(events, registrations),
		Attendance:    attService.NewAttendanceService(attendance, events),
		Dashboard:     dashService.NewDashboardService(userSvc),
	}

	eventScheduler.StartEventStatusScheduler(eventSvc)

	routes.SetupRoutes(app, services)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + close the DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if database.DB != nil {
		if sqlDB, err := database.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
