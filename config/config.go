package config

import (
	"Storefront/models"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type ServerConfig struct {
	Addr string `yaml:"addr"`
	Mode string `yaml:"mode"`
}

type DatabaseConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Database string `yaml:"database"`
}

type CorsConfig struct {
	AllowOrigins []string `yaml:"allowOrigins"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Cors     CorsConfig     `yaml:"cors"`

	// Secrets come from the environment, never from the settings file.
	DatabaseDSN string `yaml:"-"`
	JWTSecret   string `yaml:"-"`
	BcryptCost  int    `yaml:"-"`
}

// Load reads the yaml settings file and overlays the environment.
// A missing JWT_SECRET or BCRYPT_COST is a fatal configuration error.
func Load(filename string) (Config, error) {
	var config Config

	file, err := os.Open(filename)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	// A .env file is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	config.DatabaseDSN = os.Getenv("DATABASE_DSN")
	if config.DatabaseDSN == "" {
		config.DatabaseDSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.Database.Username,
			config.Database.Password,
			config.Database.Host,
			config.Database.Port,
			config.Database.Database,
		)
	}

	config.JWTSecret = os.Getenv("JWT_SECRET")
	if config.JWTSecret == "" {
		return config, errors.New("FATAL ERROR: JWT_SECRET is not defined")
	}

	cost := os.Getenv("BCRYPT_COST")
	if cost == "" {
		return config, errors.New("FATAL ERROR: BCRYPT_COST is not defined")
	}
	config.BcryptCost, err = strconv.Atoi(cost)
	if err != nil {
		return config, fmt.Errorf("FATAL ERROR: BCRYPT_COST is not a number: %w", err)
	}

	return config, nil
}

func SetupMySQLConnection(config Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(config.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Review{},
		&models.ShippingOption{},
		&models.CartProduct{},
		&models.Order{},
		&models.OrderProduct{},
	)
}
