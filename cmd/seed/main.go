package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"closet/internal/config"
	"closet/internal/db"
	"closet/internal/model"
	"closet/internal/repository"
)

// Seeds one stylist, two assigned users and a small wardrobe each, so the
// dashboard and evaluation flows have something to show on a fresh database.
// Safe to re-run: existing emails are skipped.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.UserProfile{},
		&model.ClothingItem{},
		&model.ItemEvaluation{},
		&model.Outfit{},
		&model.OutfitClothingItem{},
		&model.PurchaseRecommendation{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	itemRepo := repository.NewClothingItemRepository(gormDB)

	stylist := seedUser(ctx, userRepo, profileRepo, "stylist@example.com", "Mika", model.RoleStylist, nil)

	alice := seedUser(ctx, userRepo, profileRepo, "alice@example.com", "Alice", model.RoleUser, &stylist.ID)
	bob := seedUser(ctx, userRepo, profileRepo, "bob@example.com", "Bob", model.RoleUser, &stylist.ID)

	seedItems(ctx, itemRepo, alice.ID, []model.ClothingItem{
		{ImageURL: "/uploads/seed-tops-1.jpg", Category: model.CategoryTops, Color: "white"},
		{ImageURL: "/uploads/seed-bottoms-1.jpg", Category: model.CategoryBottoms, Color: "navy"},
		{ImageURL: "/uploads/seed-shoes-1.jpg", Category: model.CategoryShoes, Color: "black"},
	})
	seedItems(ctx, itemRepo, bob.ID, []model.ClothingItem{
		{ImageURL: "/uploads/seed-outer-1.jpg", Category: model.CategoryOuterwear, Color: "beige"},
		{ImageURL: "/uploads/seed-tops-2.jpg", Category: model.CategoryTops, Color: "gray"},
	})

	log.Println("Seed complete")
}

func seedUser(ctx context.Context, users repository.UserRepository, profiles repository.ProfileRepository, email, name string, role model.Role, stylistID *uint) *model.User {
	existing, err := users.FindByEmail(ctx, email)
	if err == nil {
		log.Printf("user %s already exists, skipping", email)
		return existing
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("lookup %s: %v", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	user := &model.User{
		Email:             email,
		PasswordHash:      string(hash),
		Name:              name,
		Role:              role,
		AssignedStylistID: stylistID,
	}
	if err := users.Create(ctx, user); err != nil {
		log.Fatalf("create %s: %v", email, err)
	}
	if err := profiles.Create(ctx, &model.UserProfile{UserID: user.ID}); err != nil {
		log.Printf("warning: create profile for %s: %v", email, err)
	}
	log.Printf("created %s (%s)", email, role)
	return user
}

func seedItems(ctx context.Context, items repository.ClothingItemRepository, userID uint, seeds []model.ClothingItem) {
	for i := range seeds {
		seeds[i].UserID = userID
		seeds[i].Status = model.ItemStatusActive
		if err := items.Create(ctx, &seeds[i]); err != nil {
			log.Fatalf("create item for user %d: %v", userID, err)
		}
	}
	log.Printf("created %d items for user %d", len(seeds), userID)
}
