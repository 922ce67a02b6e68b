package main

import (
	"os"

	"Storefront/config"
	"Storefront/models"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Loads development fixtures: one admin, three users, two categories, a
// handful of products and the shipping options.
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := config.SetupMySQLConnection(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := seed(db, cfg); err != nil {
		logger.Fatal().Err(err).Msg("seeding failed")
	}
	logger.Info().Msg("database seeded")
}

func seed(db *gorm.DB, cfg config.Config) error {
	digest, err := bcrypt.GenerateFromPassword([]byte("123456"), cfg.BcryptCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{Username: "admin", Email: "admin@example.com", PasswordDigest: string(digest), Admin: true},
		{Username: "adam", Email: "adam@example.com", PasswordDigest: string(digest)},
		{Username: "bob", Email: "bob@example.com", PasswordDigest: string(digest)},
		{Username: "mary", Email: "mary@example.com", PasswordDigest: string(digest)},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	categories := []models.Category{
		{Name: "Male"},
		{Name: "Female"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	shippingOptions := []models.ShippingOption{
		{Title: "standard", Description: "Delivery within 5-7 business days", Cost: 0.00},
		{Title: "express", Description: "Delivery within 2 business days", Cost: 9.95},
	}
	if err := db.Create(&shippingOptions).Error; err != nil {
		return err
	}

	products := []models.Product{
		{
			Title:          "Classic Watch",
			Description:    "A stainless steel watch with a leather strap",
			Price:          41.75,
			SmallImagePath: "/images/classic-watch-small.jpg",
			LargeImagePath: "/images/classic-watch-large.jpg",
			CategoryID:     categories[0].ID,
		},
		{
			Title:          "Silver Necklace",
			Description:    "A sterling silver necklace",
			Price:          59.95,
			SmallImagePath: "/images/silver-necklace-small.jpg",
			LargeImagePath: "/images/silver-necklace-large.jpg",
			CategoryID:     categories[1].ID,
		},
		{
			Title:          "Leather Wallet",
			Description:    "A hand-stitched leather wallet",
			Price:          24.50,
			SmallImagePath: "/images/leather-wallet-small.jpg",
			LargeImagePath: "/images/leather-wallet-large.jpg",
			CategoryID:     categories[0].ID,
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	reviews := []models.Review{
		{Title: "Great watch", Body: "Keeps perfect time", Rating: 5, UserID: users[1].ID, ProductID: products[0].ID},
		{Title: "Decent", Body: "Strap feels a bit thin", Rating: 3, UserID: users[2].ID, ProductID: products[0].ID},
	}
	return db.Create(&reviews).Error
}
