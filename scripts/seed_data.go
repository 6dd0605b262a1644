//go:build ignore

package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/snapwork/snapwork/internal/config"
	"github.com/snapwork/snapwork/internal/database"
	"github.com/snapwork/snapwork/internal/models"
	"github.com/snapwork/snapwork/internal/store"
)

// Bangalore coordinates
const (
	baseLat = 12.9716
	baseLng = 77.5946
)

var (
	firstNames = []string{"Rahul", "Priya", "Amit", "Sneha", "Vikram", "Anita", "Raj", "Neha", "Suresh", "Kavita",
		"Arun", "Deepa", "Kiran", "Meera", "Sanjay", "Ritu", "Vijay", "Pooja", "Manoj", "Swati"}
	lastNames = []string{"Kumar", "Sharma", "Patel", "Singh", "Reddy", "Rao", "Gupta", "Joshi", "Nair", "Menon"}
	areas     = []string{"Koramangala", "Indiranagar", "HSR Layout", "BTM Layout", "Jayanagar", "Whitefield", "Marathahalli", "Bellandur"}
)

func main() {
	rand.Seed(time.Now().UnixNano())

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var recordStore store.Store
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		db, err := database.NewPostgres(cfg.DatabaseURL, cfg.DBMaxConnections, cfg.DBMaxIdleConnections)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer db.Close()
		recordStore, err = store.NewPostgresStore(db.DB)
		if err != nil {
			log.Fatalf("Failed to initialize postgres store: %v", err)
		}
	default:
		recordStore, err = store.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to initialize file store: %v", err)
		}
	}

	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	log.Println("Creating 30 users...")
	users := make([]models.User, 0, 30)
	for i := 0; i < 30; i++ {
		userType := models.UserTypeCustomer
		if i%2 == 0 {
			userType = models.UserTypeWorker
		}

		user := models.User{
			ID:        int64(i + 1),
			Name:      fmt.Sprintf("%s %s", firstNames[rand.Intn(len(firstNames))], lastNames[rand.Intn(len(lastNames))]),
			Email:     fmt.Sprintf("user%d@snapwork.test", i+1),
			Phone:     fmt.Sprintf("98%08d", rand.Intn(100000000)),
			Password:  string(hashed),
			UserType:  userType,
			Location:  areas[rand.Intn(len(areas))] + ", Bangalore",
			CreatedAt: time.Now(),
		}

		// Most users share a position near the city center (75%)
		if rand.Float64() > 0.25 {
			lat := baseLat + (rand.Float64()-0.5)*0.1 // +/- 0.05 degrees (~5km)
			lng := baseLng + (rand.Float64()-0.5)*0.1
			user.Lat = &lat
			user.Lng = &lng
		}

		users = append(users, user)
	}

	if err := recordStore.SaveUsers(ctx, users); err != nil {
		log.Fatalf("Failed to save users: %v", err)
	}
	log.Printf("Created %d users", len(users))

	// Re-seed the demo gig set with coordinates scattered around town
	gigs := store.SeedGigs()
	for i := range gigs {
		lat := baseLat + (rand.Float64()-0.5)*0.1
		lng := baseLng + (rand.Float64()-0.5)*0.1
		gigs[i].Lat = &lat
		gigs[i].Lng = &lng
	}
	if err := recordStore.SaveGigs(ctx, gigs); err != nil {
		log.Fatalf("Failed to save gigs: %v", err)
	}
	log.Printf("Created %d gigs", len(gigs))

	log.Println("\n=== Seed Data Summary ===")
	log.Printf("Users created: %d (password: password123)", len(users))
	log.Printf("Gigs created: %d", len(gigs))
	log.Println("Sample user:", users[0].Email)
}
