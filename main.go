package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"backend/config"
	"backend/controllers"
	"backend/database"
	"backend/middleware"
	"backend/models"
	"backend/routes"
	"backend/scraper"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

var jwtKey []byte

type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerHandler(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password are required"})
	}

	var existing models.Profile
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already registered"})
	}

	role := req.Role
	switch role {
	case models.RoleSeller, models.RoleBuyer:
	case "":
		role = models.RoleBuyer
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Role must be seller or buyer"})
	}

	profile := models.Profile{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     role,
		Location: req.Location,
		Phone:    req.Phone,
	}
	if err := profile.HashPassword(req.Password); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not hash password"})
	}

	if err := database.DB.Create(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create profile"})
	}

	return c.Status(201).JSON(profile)
}

// 🔐 Login with bcrypt verification, responds with a 24h JWT
func loginHandler(c *fiber.Ctx) error {
	var creds LoginRequest
	if err := c.BodyParser(&creds); err != nil {
		log.Println("❌ Error parsing request body:", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}

	var profile models.Profile
	result := database.DB.Where("email = ?", creds.Email).First(&profile)
	if result.Error != nil {
		log.Println("❌ Profile not found:", creds.Email)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	if !profile.CheckPassword(creds.Password) {
		log.Println("❌ Invalid password for:", creds.Email)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := jwt.MapClaims{
		"user_id": profile.ID,
		"email":   profile.Email,
		"role":    profile.Role,
		"exp":     expirationTime.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey)
	if err != nil {
		log.Println("❌ Error generating JWT token:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate token"})
	}

	return c.JSON(fiber.Map{"token": tokenString, "profile": profile})
}

// startScheduler triggers an all-markets scrape at the configured interval
func startScheduler(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			log.Println("⏰ Scheduled scrape starting")
			results, err := controllers.RunScrape(context.Background(), "")
			if err != nil {
				log.Println("❌ Scheduled scrape failed:", err)
				continue
			}
			log.Printf("✅ Scheduled scrape done, %d items", len(results))
		}
	}()
}

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	jwtKey = []byte(cfg.JWTSecret)
	middleware.SetJWTSecret(cfg.JWTSecret)

	if cfg.DSN == "" {
		log.Fatal("❌ Database DSN is not configured")
	}
	database.Connect(cfg.DSN)
	models.SeedCounties(database.DB, cfg.Counties)

	sources, err := scraper.BuildSources(cfg.Scrape)
	if err != nil {
		log.Fatalf("❌ Failed to build price sources: %v", err)
	}
	controllers.Sources = sources
	controllers.DefaultCounty = cfg.Scrape.DefaultCounty
	controllers.FloorPrice = cfg.Scrape.FloorPrice

	app := fiber.New()

	// 🛡 CORS is wide open, the SPA calls these endpoints directly
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, apikey, x-client-info",
	}))
	app.Use(logger.New())

	routes.RegisterScrapeRoutes(app)
	routes.RegisterPriceRoutes(app)
	routes.RegisterCommodityRoutes(app)
	routes.RegisterCategoryRoutes(app)
	routes.RegisterCountyRoutes(app)
	routes.RegisterInventoryRoutes(app)
	routes.RegisterAlertRoutes(app)

	web := app.Group("/api")
	web.Post("/register", registerHandler)
	web.Post("/login", loginHandler)

	// Endpoint testing
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "🚀 Golang Backend is Running!"})
	})

	startScheduler(cfg.Scrape.Interval)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	fmt.Println("🚀 Server running on port " + port)
	log.Fatal(app.Listen(":" + port))
}
