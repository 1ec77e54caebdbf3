package main

import (
	"context"
	"log"
	"os"
	"time"

	"heiwahouse/internal/database"
	"heiwahouse/internal/domain"
	"heiwahouse/internal/modules/catalog"
	"heiwahouse/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type roomSeedModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name"`
	Description   string    `gorm:"column:description"`
	Capacity      int       `gorm:"column:capacity"`
	BookingType   string    `gorm:"column:booking_type"`
	Pricing       string    `gorm:"column:pricing;type:text"`
	Amenities     string    `gorm:"column:amenities;type:text"`
	FeaturedImage string    `gorm:"column:featured_image"`
	IsActive      bool      `gorm:"column:is_active"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (roomSeedModel) TableName() string { return "rooms" }

type assignmentSeedModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	RoomID    int64     `gorm:"column:room_id;index"`
	BedNumber *int      `gorm:"column:bed_number"`
	CheckIn   time.Time `gorm:"column:check_in_date"`
	CheckOut  time.Time `gorm:"column:check_out_date"`
	BookingID int64     `gorm:"column:booking_id;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (assignmentSeedModel) TableName() string { return "room_assignments" }

type bookingSeedModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Reference   string    `gorm:"column:reference;uniqueIndex"`
	ClientName  string    `gorm:"column:client_name"`
	ClientEmail string    `gorm:"column:client_email"`
	Status      string    `gorm:"column:status"`
	Subtotal    float64   `gorm:"column:subtotal"`
	TaxAmount   float64   `gorm:"column:tax_amount"`
	FeeAmount   float64   `gorm:"column:fee_amount"`
	Total       float64   `gorm:"column:total"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (bookingSeedModel) TableName() string { return "bookings" }

type bookingItemSeedModel struct {
	ID        int64   `gorm:"column:id;primaryKey"`
	BookingID int64   `gorm:"column:booking_id;index"`
	Type      string  `gorm:"column:item_type"`
	ItemID    int64   `gorm:"column:item_id"`
	Quantity  int     `gorm:"column:quantity"`
	UnitPrice float64 `gorm:"column:unit_price"`
	Total     float64 `gorm:"column:total_price"`
}

func (bookingItemSeedModel) TableName() string { return "booking_items" }

type surfCampSeedModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name"`
	Description    string    `gorm:"column:description"`
	BasePrice      float64   `gorm:"column:base_price"`
	DurationNights int       `gorm:"column:duration_nights"`
	Capacity       int       `gorm:"column:capacity"`
	IsActive       bool      `gorm:"column:is_active"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (surfCampSeedModel) TableName() string { return "surf_camps" }

type addOnSeedModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Price       float64   `gorm:"column:price"`
	IsActive    bool      `gorm:"column:is_active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (addOnSeedModel) TableName() string { return "add_ons" }

type adminUserSeedModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Name         string    `gorm:"column:name"`
	Role         string    `gorm:"column:role"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (adminUserSeedModel) TableName() string { return "admin_users" }

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "heiwa.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&roomSeedModel{},
		&assignmentSeedModel{},
		&bookingSeedModel{},
		&bookingItemSeedModel{},
		&surfCampSeedModel{},
		&addOnSeedModel{},
		&adminUserSeedModel{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM room_assignments")
	db.Exec("DELETE FROM booking_items")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM surf_camps")
	db.Exec("DELETE FROM add_ons")
	db.Exec("DELETE FROM admin_users")

	log.Println("Creating admin user...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	db.Create(&adminUserSeedModel{
		Email:        "admin@heiwa.house",
		PasswordHash: string(adminHash),
		Name:         "Heiwa Admin",
		Role:         string(domain.RoleAdmin),
	})

	log.Println("Creating rooms...")
	roomRepo := repository.NewRoomRepository(db)
	campRepo := repository.NewSurfCampRepository(db)
	addOnRepo := repository.NewAddOnRepository(db)
	cat := catalog.NewService(roomRepo, campRepo, addOnRepo)

	offSeason := 38.0
	rooms := []catalog.RoomRequest{
		{
			Name:        "Ocean View Dorm",
			Description: "Eight-bed dorm with a view over the break.",
			Capacity:    8,
			BookingType: string(domain.BookPerBed),
			Pricing: domain.RoomPricing{
				Standard:  45,
				OffSeason: &offSeason,
				Camp:      &domain.CampPricing{Kind: domain.CampPerBed, PerBed: 40},
			},
			Amenities: []string{"wifi", "lockers", "shared bathroom"},
		},
		{
			Name:        "Garden Double",
			Description: "Private double room facing the garden.",
			Capacity:    2,
			BookingType: string(domain.BookWhole),
			Pricing: domain.RoomPricing{
				Standard: 110,
				Camp: &domain.CampPricing{
					Kind:        domain.CampByOccupancy,
					ByOccupancy: map[int]float64{1: 95, 2: 120},
				},
			},
			Amenities: []string{"wifi", "ensuite", "terrace"},
		},
		{
			Name:        "Beachfront Suite",
			Description: "Family suite steps from the sand.",
			Capacity:    4,
			BookingType: string(domain.BookWhole),
			Pricing:     domain.RoomPricing{Standard: 180},
			Amenities:   []string{"wifi", "ensuite", "kitchenette"},
		},
	}
	ctx := context.Background()
	for _, r := range rooms {
		if _, err := cat.CreateRoom(ctx, r); err != nil {
			log.Fatal("seed room failed:", err)
		}
	}

	log.Println("Creating surf camps...")
	camps := []catalog.SurfCampRequest{
		{Name: "Beginner Week", Description: "Seven nights, daily lessons.", BasePrice: 75, DurationNights: 7, Capacity: 12},
		{Name: "Intermediate Coaching", Description: "Five nights with video analysis.", BasePrice: 95, DurationNights: 5, Capacity: 8},
	}
	for _, c := range camps {
		if _, err := cat.CreateSurfCamp(ctx, c); err != nil {
			log.Fatal("seed surf camp failed:", err)
		}
	}

	log.Println("Creating add-ons...")
	addOns := []catalog.AddOnRequest{
		{Name: "Airport Transfer", Description: "Pickup from the airport.", Price: 35},
		{Name: "Board Rental", Description: "Per-week board rental.", Price: 60},
		{Name: "Yoga Pass", Description: "Unlimited morning sessions.", Price: 45},
	}
	for _, a := range addOns {
		if _, err := cat.CreateAddOn(ctx, a); err != nil {
			log.Fatal("seed add-on failed:", err)
		}
	}

	// A confirmed demo booking occupying two dorm beds next month, so the
	// availability endpoints have something to subtract.
	log.Println("Creating demo booking...")
	checkIn := time.Now().UTC().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	checkOut := checkIn.AddDate(0, 0, 3)

	demo := bookingSeedModel{
		Reference:   "d3m0b00k-0000-0000-0000-000000000001",
		ClientName:  "Demo Guest",
		ClientEmail: "demo@example.com",
		Status:      string(domain.BookingConfirmed),
		Subtotal:    240,
		TaxAmount:   24,
		FeeAmount:   12,
		Total:       276,
	}
	db.Create(&demo)
	db.Create(&bookingItemSeedModel{
		BookingID: demo.ID,
		Type:      string(domain.ItemRoom),
		ItemID:    1,
		Quantity:  2,
		UnitPrice: 120,
		Total:     240,
	})
	for bed := 1; bed <= 2; bed++ {
		b := bed
		db.Create(&assignmentSeedModel{
			RoomID:    1,
			BedNumber: &b,
			CheckIn:   checkIn,
			CheckOut:  checkOut,
			BookingID: demo.ID,
		})
	}

	log.Println("Seed complete.")
}
