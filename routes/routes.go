// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"go-register/controllers"
	"go-register/middleware"
)

// RegisterRoutes sets up all the routes for the register service
func RegisterRoutes(router *mux.Router, registerController *controllers.RegisterController, catalogController *controllers.CatalogController, adminController *controllers.AdminController, hub *controllers.EventHub) {
	// Cashier routes (no auth: the register is a single kiosk)
	router.HandleFunc("/state", registerController.GetState).Methods("GET")
	router.HandleFunc("/scan", registerController.AddByCode).Methods("POST")
	router.HandleFunc("/cart", registerController.ClearCart).Methods("DELETE")
	router.HandleFunc("/cart/lines/{index}", registerController.RemoveOne).Methods("DELETE")
	router.HandleFunc("/cart/storno", registerController.RemoveLast).Methods("POST")
	router.HandleFunc("/transaction", registerController.NewTransaction).Methods("POST")

	router.HandleFunc("/tender/tap", registerController.Tap).Methods("POST")
	router.HandleFunc("/tender/undo", registerController.UndoTap).Methods("POST")
	router.HandleFunc("/tender/reset", registerController.ResetGiven).Methods("POST")
	router.HandleFunc("/tender/exact", registerController.SetExact).Methods("POST")

	router.HandleFunc("/print", registerController.Print).Methods("POST")
	router.HandleFunc("/pay", registerController.Pay).Methods("POST")

	// UI event stream (sound cues, scans, scanner state)
	router.HandleFunc("/events", hub.Stream).Methods("GET")

	// Product routes
	router.HandleFunc("/products", catalogController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{code}", catalogController.GetProductByCode).Methods("GET")

	// Admin routes
	router.HandleFunc("/admin/login", adminController.Login).Methods("POST")

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly)
	admin.HandleFunc("/settings", adminController.GetSettings).Methods("GET")
	admin.HandleFunc("/settings", adminController.UpdateSettings).Methods("PUT")
	admin.HandleFunc("/sales", adminController.GetSales).Methods("GET")
	admin.HandleFunc("/report", adminController.SendReport).Methods("POST")
	admin.HandleFunc("/products", catalogController.UpsertProduct).Methods("POST")
	admin.HandleFunc("/products/check", catalogController.CheckCode).Methods("POST")
	admin.HandleFunc("/products/export", catalogController.ExportCSV).Methods("GET")
	admin.HandleFunc("/products/import", catalogController.ImportCSV).Methods("POST")
	admin.HandleFunc("/products/{code}", catalogController.DeleteProduct).Methods("DELETE")
}
