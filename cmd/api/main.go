package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gymhub/internal/config"
	"gymhub/internal/database"
	"gymhub/internal/domain/auth"
	"gymhub/internal/domain/gym"
	"gymhub/internal/domain/limits"
	"gymhub/internal/domain/notification"
	"gymhub/internal/domain/payment"
	"gymhub/internal/domain/plan"
	"gymhub/internal/domain/subscription"
	"gymhub/internal/logging"
	"gymhub/internal/middleware"
	jwtsvc "gymhub/internal/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logging.Init(cfg.Env)
	log := logging.Module("api")

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	// Repositories.
	userRepo := auth.NewRepository(db)
	planRepo := plan.NewRepository(db)
	subRepo := subscription.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	gymRepo := gym.NewGymRepository(db)
	locationRepo := gym.NewLocationRepository(db)
	equipmentRepo := gym.NewEquipmentRepository(db)
	memberRepo := gym.NewMemberRepository(db)

	// Services. The subscription service doubles as the enforcer's plan
	// source: it resolves the live subscription's quota per owner.
	authService := auth.NewService(userRepo, j)
	planService := plan.NewService(planRepo, subRepo)
	paymentService := payment.NewService(paymentRepo)
	subService := subscription.NewService(db, subRepo, planRepo, userRepo, memberRepo, paymentRepo)

	enforcer := limits.NewEnforcer(subService, gym.NewUsage(db), cfg.EnforceWithoutSubscription)
	gymService := gym.NewService(db, gymRepo, locationRepo, equipmentRepo, memberRepo, userRepo, enforcer)

	hub := notification.NewHub()
	subService.SetNotifier(hub)
	enforcer.SetNotifier(hub)

	// Handlers.
	authHandler := auth.NewHandler(authService)
	planHandler := plan.NewHandler(planService)
	paymentHandler := payment.NewHandler(paymentService)
	subHandler := subscription.NewHandler(subService)
	gymHandler := gym.NewHandler(gymService)
	wsHandler := notification.NewHandler(hub, j)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	notification.RegisterRoutes(r, wsHandler)

	v1 := r.Group("/api/v1")
	{
		auth.RegisterPublicRoutes(v1, authHandler)
		plan.RegisterPublicRoutes(v1, planHandler)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			auth.RegisterProtectedRoutes(protected, authHandler)

			owner := protected.Group("/")
			owner.Use(middleware.RequireRole(middleware.RoleGymOwner, middleware.RoleSuperAdmin))
			{
				gym.RegisterOwnerRoutes(owner, gymHandler)
				subscription.RegisterOwnerRoutes(owner, subHandler)
			}

			admin := protected.Group("/")
			admin.Use(middleware.SuperAdminOnly())
			{
				auth.RegisterAdminRoutes(admin, authHandler)
				plan.RegisterAdminRoutes(admin, planHandler)
				subscription.RegisterAdminRoutes(admin, subHandler)
				payment.RegisterAdminRoutes(admin, paymentHandler)
			}
		}
	}

	log.WithField("port", cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
