package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"go-register/catalog"
	"go-register/ean"
	"go-register/register"
)

// CatalogController handles product catalog requests
type CatalogController struct {
	Catalog *catalog.Catalog
	Session *register.Session // price parsing follows the display mode
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(cat *catalog.Catalog, session *register.Session) *CatalogController {
	return &CatalogController{
		Catalog: cat,
		Session: session,
	}
}

// GetProducts lists merged catalog entries, optionally filtered by ?q=
func (cc *CatalogController) GetProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, cc.Catalog.List(r.URL.Query().Get("q")))
}

// GetProductByCode returns a single merged entry
func (cc *CatalogController) GetProductByCode(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	code, err := ean.Normalize(params["code"])
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := cc.Catalog.Lookup(code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, p)
}

// UpsertProduct creates or updates an override entry (Admin only)
func (cc *CatalogController) UpsertProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code  string `json:"code"`
		Name  string `json:"name"`
		Price string `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	p, err := cc.Catalog.Upsert(r.Context(), req.Code, req.Name, req.Price, cc.Session.Settings().WholeUnits)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, p)
}

// DeleteProduct removes an override entry (Admin only). Base catalog
// entries cannot be deleted, only shadowed.
func (cc *CatalogController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	if err := cc.Catalog.Remove(r.Context(), params["code"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, "Product deleted")
}

// CheckCode validates a full code or completes a 7/12-digit base with
// its check digit (Admin helper)
func (cc *CatalogController) CheckCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	code, err := ean.Normalize(req.Code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"code":      code,
		"valid":     ean.IsValid(code),
		"completed": len(ean.OnlyDigits(req.Code)) != len(code),
	})
}

// ExportCSV streams the merged catalog as semicolon-separated CSV
// (Admin only)
func (cc *CatalogController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="produkte.csv"`)
	if err := cc.Catalog.ExportCSV(w); err != nil {
		http.Error(w, "Error exporting catalog", http.StatusInternalServerError)
	}
}

// ImportCSV imports override entries from an uploaded CSV file
// (Admin only); malformed rows are skipped, not fatal
func (cc *CatalogController) ImportCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Failed to parse multipart form", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Failed to retrieve file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	added, skipped, err := cc.Catalog.ImportCSV(r.Context(), file, cc.Session.Settings().WholeUnits)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]int{"added": added, "skipped": skipped})
}
