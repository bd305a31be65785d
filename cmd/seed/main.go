package main

import (
	"log"
	"time"

	"courtbook/internal/config"
	"courtbook/internal/database"
	"courtbook/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a development database with two owners, three customers, a pair
// of properties with courts, weekday/weekend pricing and a few sample
// bookings. Destructive: wipes existing rows first.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM availability_blocks")
	db.Exec("DELETE FROM pricing_rules")
	db.Exec("DELETE FROM courts")
	db.Exec("DELETE FROM properties")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	ownerA := createUser(db, "aidar@courtbook.kz", "owner123", domain.RoleOwner, "Aidar Sultanov", "+7 701 100 2030")
	ownerB := createUser(db, "madina@courtbook.kz", "owner123", domain.RoleOwner, "Madina Omarova", "+7 702 555 7788")

	customerEmails := []struct {
		email, name string
	}{
		{"asel@mail.kz", "Asel Nurlanova"},
		{"bekzat@gmail.com", "Bekzat Akhmetov"},
		{"dina@yandex.kz", "Dina Kairatova"},
	}
	var customers []domain.User
	for _, c := range customerEmails {
		customers = append(customers, createUser(db, c.email, "customer123", domain.RoleCustomer, c.name, ""))
	}

	log.Println("Creating properties and courts...")

	arena := domain.Property{
		OwnerID:     ownerA.ID,
		Name:        "Almaty Arena Sports Club",
		Description: "Indoor multi-sport complex near the city center.",
		Address:     "12 Abay Avenue",
		City:        "Almaty",
		Country:     "Kazakhstan",
		Phone:       "+7 727 300 4050",
		Email:       "info@almatyarena.kz",
		Amenities:   domain.StringSlice{"parking", "showers", "cafe", "equipment rental"},
		IsActive:    true,
	}
	db.Create(&arena)

	riverside := domain.Property{
		OwnerID:   ownerB.ID,
		Name:      "Riverside Padel Center",
		Address:   "3 Esil Embankment",
		City:      "Astana",
		Country:   "Kazakhstan",
		Amenities: domain.StringSlice{"parking", "lockers"},
		IsActive:  true,
	}
	db.Create(&riverside)

	badminton := domain.Court{PropertyID: arena.ID, Name: "Badminton Court 1", SportType: "badminton", IsActive: true}
	tennis := domain.Court{PropertyID: arena.ID, Name: "Tennis Court A", SportType: "tennis", IsActive: true}
	padel := domain.Court{PropertyID: riverside.ID, Name: "Padel Court 1", SportType: "padel", IsActive: true}
	db.Create(&badminton)
	db.Create(&tennis)
	db.Create(&padel)

	log.Println("Creating pricing rules...")

	weekdays := domain.Weekdays{0, 1, 2, 3, 4}
	weekend := domain.Weekdays{5, 6}

	rules := []domain.PricingRule{
		{CourtID: badminton.ID, Days: weekdays, StartTime: mustTime("08:00"), EndTime: mustTime("17:00"), PricePerHour: 4000, Label: "Weekday daytime"},
		{CourtID: badminton.ID, Days: weekdays, StartTime: mustTime("17:00"), EndTime: mustTime("23:00"), PricePerHour: 6000, Label: "Weekday evening"},
		{CourtID: badminton.ID, Days: weekend, StartTime: mustTime("09:00"), EndTime: mustTime("22:00"), PricePerHour: 6500, Label: "Weekend"},
		{CourtID: tennis.ID, Days: weekdays, StartTime: mustTime("07:00"), EndTime: mustTime("22:00"), PricePerHour: 8000},
		{CourtID: padel.ID, Days: append(append(domain.Weekdays{}, weekdays...), weekend...), StartTime: mustTime("10:00"), EndTime: mustTime("22:00"), PricePerHour: 9000},
	}
	for i := range rules {
		db.Create(&rules[i])
	}

	log.Println("Creating availability blocks and bookings...")

	nextMonday := nextWeekday(time.Now(), time.Monday)

	db.Create(&domain.AvailabilityBlock{
		CourtID:   badminton.ID,
		Date:      nextMonday,
		StartTime: mustTime("12:00"),
		EndTime:   mustTime("13:00"),
		Reason:    "Maintenance",
	})

	db.Create(&domain.Booking{
		CourtID:       badminton.ID,
		CustomerID:    customers[0].ID,
		Date:          nextMonday,
		StartTime:     mustTime("09:00"),
		EndTime:       mustTime("11:00"),
		TotalHours:    2,
		PricePerHour:  4000,
		TotalPrice:    8000,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPaid,
	})
	db.Create(&domain.Booking{
		CourtID:       tennis.ID,
		CustomerID:    customers[1].ID,
		Date:          nextMonday,
		StartTime:     mustTime("18:00"),
		EndTime:       mustTime("19:00"),
		TotalHours:    1,
		PricePerHour:  8000,
		TotalPrice:    8000,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
	})

	log.Println("Seed complete.")
	log.Println("Owners: aidar@courtbook.kz, madina@courtbook.kz / owner123")
	log.Println("Customers: asel@mail.kz, bekzat@gmail.com, dina@yandex.kz / customer123")
}

func createUser(db *gorm.DB, email, password string, role domain.UserRole, name, phone string) domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hash password: ", err)
	}
	u := domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         name,
		Phone:        phone,
	}
	db.Create(&u)
	return u
}

func mustTime(s string) domain.TimeOfDay {
	t, err := domain.ParseTimeOfDay(s)
	if err != nil {
		log.Fatal("bad seed time: ", err)
	}
	return t
}

func nextWeekday(from time.Time, day time.Weekday) time.Time {
	d := domain.DateOnly(from)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
