package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"makeupstudio/internal/database"
	"makeupstudio/internal/domain"
	"makeupstudio/internal/repository"
)

// Seeds a local development database with an admin profile and sample content.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "makeupstudio.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM contact_submissions")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM faqs")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM images")
	db.Exec("DELETE FROM admin_users")

	ctx := context.Background()

	// ================== ADMIN ==================
	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "artist@makeupstudio.local"
	}
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	profileRepo := repository.NewProfileRepository(db)
	admin := &domain.AdminProfile{
		Email:        adminEmail,
		PasswordHash: string(hash),
		Bio:          "With over 10 years of experience in the beauty industry, I am dedicated to enhancing your natural beauty.",
		Bio2:         "Every client receives personalized service tailored to their unique features and preferences.",
	}
	if err := profileRepo.Create(ctx, admin); err != nil {
		log.Fatal("admin seed failed:", err)
	}
	log.Printf("Admin created: %s / %s", adminEmail, adminPassword)

	// ================== SERVICES ==================
	log.Println("Creating services...")
	serviceRepo := repository.NewServiceRepository(db)
	services := []domain.Service{
		{Title: "Bridal Makeup", Description: "Personalized bridal makeup for your special day, trial included.", Price: 250, Duration: 90, Category: "bridal", Featured: true},
		{Title: "Special Event Makeup", Description: "Photoshoot, gala and quinceanera looks that last all night.", Price: 120, Duration: 60, Category: "event", Featured: true},
		{Title: "Makeup Lesson", Description: "One-on-one lesson covering techniques for your features and style.", Price: 95, Duration: 75, Category: "lessons"},
		{Title: "Everyday Glam", Description: "A natural, polished look for headshots or a night out.", Price: 80, Duration: 45, Category: "event"},
	}
	for i := range services {
		services[i].CreatedAt = time.Now()
		if err := serviceRepo.Create(ctx, &services[i]); err != nil {
			log.Fatal("service seed failed:", err)
		}
	}

	// ================== GALLERY ==================
	log.Println("Creating gallery images...")
	galleryRepo := repository.NewGalleryRepository(db)
	images := []domain.GalleryImage{
		{Title: "Bridal look", Category: "bridal", AltText: "Bridal makeup", Image: domain.ImageRef{URL: "https://res.cloudinary.com/dzrlbq2wf/image/upload/v1745344480/IMG_2897_rqsnjs.png"}},
		{Title: "Fashion editorial", Category: "editorial", AltText: "Fashion makeup", Image: domain.ImageRef{URL: "https://res.cloudinary.com/dzrlbq2wf/image/upload/v1745344461/IMG_2896_q8cvoo.png"}},
		{Title: "Special event", Category: "event", AltText: "Special event makeup", Image: domain.ImageRef{URL: "https://res.cloudinary.com/dzrlbq2wf/image/upload/v1745344410/IMG_2899_e0kn0e.png"}},
		{Title: "Natural glam", Category: "event", AltText: "Natural makeup look", Image: domain.ImageRef{URL: "https://res.cloudinary.com/dzrlbq2wf/image/upload/v1745344390/IMG_2900_buc2vo.png"}},
	}
	for i := range images {
		images[i].CreatedAt = time.Now()
		if err := galleryRepo.Create(ctx, &images[i]); err != nil {
			log.Fatal("gallery seed failed:", err)
		}
	}

	// ================== FAQS ==================
	log.Println("Creating FAQs...")
	faqRepo := repository.NewFAQRepository(db)
	faqs := []domain.FAQ{
		{Question: "How far in advance should I book for my wedding?", Answer: "3-6 months ahead, especially during peak season (May-October).", Category: "Booking", DisplayOrder: 1},
		{Question: "Do you offer trials for bridal makeup?", Answer: "Yes, schedule a trial 1-2 months before the wedding.", Category: "Services", DisplayOrder: 2},
		{Question: "Do you travel to clients?", Answer: "Yes, on-location services are available; travel fees may apply.", Category: "Services", DisplayOrder: 3},
		{Question: "What is your cancellation policy?", Answer: "48 hours notice is required; later cancellations may incur a 50% fee.", Category: "Policies", DisplayOrder: 4},
	}
	for i := range faqs {
		faqs[i].CreatedAt = time.Now()
		if err := faqRepo.Create(ctx, &faqs[i]); err != nil {
			log.Fatal("faq seed failed:", err)
		}
	}

	// ================== BOOKINGS ==================
	log.Println("Creating a sample booking...")
	bookingRepo := repository.NewBookingRepository(db)
	booking := &domain.Booking{
		ClientName:  "Jamie Rivera",
		ClientEmail: "jamie@example.com",
		ClientPhone: "+1 555 010 2030",
		ServiceID:   services[0].ID,
		ServiceName: services[0].Title,
		BookingDate: time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		StartTime:   "14:00",
		EndTime:     "15:30",
		Notes:       "Wedding party of four, venue downtown.",
		Status:      domain.BookingPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := bookingRepo.Create(ctx, booking); err != nil {
		log.Fatal("booking seed failed:", err)
	}

	log.Println("Seed complete.")
}
