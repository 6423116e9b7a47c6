package models

// Product is a sellable catalog entry. Prices are stored in cents to
// avoid floating-point drift; codes are normalized EAN-8/EAN-13 strings
// and keep their leading zeros.
type Product struct {
	Code       string `bson:"_id" json:"code"`
	Name       string `bson:"name" json:"name"`
	PriceCents int64  `bson:"price_cents" json:"price_cents"`
}
