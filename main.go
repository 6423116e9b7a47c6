// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"go-register/bridge"
	"go-register/catalog"
	"go-register/controllers"
	"go-register/models"
	"go-register/register"
	"go-register/routes"
	"go-register/utils"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key and the admin PIN
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))
	pin := os.Getenv("ADMIN_PIN")
	if pin == "" {
		pin = "1234"
	}
	if err := utils.SetAdminPIN(pin); err != nil {
		log.Fatal(err)
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}
	settingsPath := filepath.Join(dataDir, "settings.json")

	// Load persisted settings
	settings, err := utils.LoadSettings(settingsPath)
	if err != nil {
		log.Printf("loading settings: %v (using defaults)", err)
		settings = models.DefaultSettings()
	}

	// Base catalog from products.json; a missing file is an empty base
	base, err := catalog.LoadBaseFile(filepath.Join(dataDir, "products.json"))
	if err != nil {
		log.Printf("loading base catalog: %v (starting empty)", err)
		base = nil
	}

	// Override store: local JSON file, or MongoDB for a shared catalog
	var store catalog.Store
	if os.Getenv("CATALOG_BACKEND") == "mongo" {
		client := utils.ConnectDB()
		defer func() {
			if err := client.Disconnect(context.TODO()); err != nil {
				log.Println(err)
			}
		}()
		store = catalog.NewMongoStore(client)
	} else {
		store = catalog.NewFileStore(filepath.Join(dataDir, "overrides.json"))
	}

	cat, err := catalog.New(context.Background(), base, store)
	if err != nil {
		if !errors.Is(err, catalog.ErrUnavailable) {
			log.Fatal(err)
		}
		log.Printf("catalog overrides: %v (continuing without)", err)
	}

	// Hardware bridge collaborators
	bridgeURL := os.Getenv("BRIDGE_URL")
	if bridgeURL == "" {
		bridgeURL = "http://localhost:8080"
	}
	printer := bridge.NewPrintClient(bridgeURL)

	// Register session, journal and the UI event hub
	hub := controllers.NewEventHub()
	journal := register.NewJournal()
	var session *register.Session
	sounder := &controllers.HubSounder{Hub: hub, Enabled: func() bool { return session.Settings().Sound }}
	session = register.NewSession(cat, printer, settings,
		register.WithJournal(journal),
		register.WithSounder(sounder),
	)

	// Scanner feed: every scan behaves exactly like a typed code
	feed := bridge.NewScannerFeed(bridgeURL, func(code string) {
		hub.Broadcast("scan", code)
		if _, err := session.AddByCode(code); err != nil {
			log.Printf("scan %q: %v", code, err)
		}
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feed.Run(ctx)

	// Initialize controllers
	registerController := controllers.NewRegisterController(session, feed)
	catalogController := controllers.NewCatalogController(cat, session)
	adminController := controllers.NewAdminController(session, journal, utils.NewEmailService(), settingsPath)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, registerController, catalogController, adminController, hub)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Register is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
