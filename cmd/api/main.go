package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"makeupstudio/internal/config"
	"makeupstudio/internal/database"
	"makeupstudio/internal/middleware"
	"makeupstudio/internal/modules/auth"
	"makeupstudio/internal/modules/booking"
	"makeupstudio/internal/modules/catalog"
	"makeupstudio/internal/modules/contact"
	"makeupstudio/internal/modules/faq"
	"makeupstudio/internal/modules/gallery"
	"makeupstudio/internal/modules/profile"
	"makeupstudio/internal/modules/site"
	"makeupstudio/internal/notification"
	jwtsvc "makeupstudio/internal/pkg/jwt"
	"makeupstudio/internal/repository"
	"makeupstudio/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	profileRepo := repository.NewProfileRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	contactRepo := repository.NewContactRepository(db)

	var store storage.Store
	var localStore *storage.Local
	switch cfg.StorageDriver {
	case "cloudinary":
		cld, err := storage.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Fatal(err)
		}
		store = cld
	default:
		localStore = storage.NewLocal(cfg.UploadsDir, cfg.StaticURLBase)
		store = localStore
	}
	resolver := storage.NewResolver(store)

	var mailer *notification.Mailer
	if cfg.SMTPHost != "" {
		mailer = notification.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPUser)
	}
	var sms *notification.SMSSender
	if cfg.TwilioAccountSID != "" {
		sms = notification.NewSMSSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom)
	}
	notifier := notification.NewSender(mailer, sms, cfg.ContactInbox)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(profileRepo, j, cfg)
	authHandler := auth.NewHandler(authService)

	profileService := profile.NewService(profileRepo, store, resolver)
	profileHandler := profile.NewHandler(profileService)

	galleryService := gallery.NewService(galleryRepo, store, resolver)
	galleryHandler := gallery.NewHandler(galleryService)

	catalogService := catalog.NewService(serviceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	faqService := faq.NewService(faqRepo)
	faqHandler := faq.NewHandler(faqService)

	bookingService := booking.NewService(bookingRepo, serviceRepo, notifier)
	bookingHandler := booking.NewHandler(bookingService)

	contactService := contact.NewService(contactRepo, notifier, cfg.ContactRelayURL)
	contactHandler := contact.NewHandler(contactService)

	siteService := site.NewService(profileRepo, serviceRepo, galleryRepo, faqRepo, resolver, cfg.PrimaryAdminEmail)
	siteHandler := site.NewHandler(siteService)

	reminder := booking.NewReminder(bookingRepo, notifier)
	if err := reminder.Start(); err != nil {
		log.Fatal(err)
	}
	defer reminder.Stop()

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	if localStore != nil {
		r.Static("/static/uploads", localStore.BaseDir())
	}

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		siteHandler.RegisterPublicRoutes(v1)
		galleryHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		faqHandler.RegisterPublicRoutes(v1)
		contactHandler.RegisterPublicRoutes(v1)

		// public booking creation links the session when one is present
		public := v1.Group("/")
		public.Use(middleware.OptionalAuth(j))
		{
			bookingHandler.RegisterPublicRoutes(public)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAdmin(j, authService))
		{
			authHandler.RegisterProtectedRoutes(admin)
			profileHandler.RegisterProtectedRoutes(admin)
			galleryHandler.RegisterProtectedRoutes(admin)
			catalogHandler.RegisterProtectedRoutes(admin)
			faqHandler.RegisterProtectedRoutes(admin)
			bookingHandler.RegisterProtectedRoutes(admin)
		}
	}

	log.Printf("listening on %s (storage=%s, env=%s)", cfg.Addr, cfg.StorageDriver, cfg.AppEnv)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
