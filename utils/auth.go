package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// JWT Secret Key
var JwtKey = []byte("your_secret_key") // This will be loaded from .env

// pinHash is the bcrypt hash the admin PIN is checked against. The PIN
// is a kid-proofing gate, not a security boundary, but it still never
// sits in memory or config in the clear.
var pinHash []byte

// Claims represents the JWT claims of an admin session
type Claims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

// GenerateJWT generates a short-lived token for an unlocked admin session
func GenerateJWT(role string) (string, error) {
	expirationTime := time.Now().Add(12 * time.Hour)
	claims := &Claims{
		Role: role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// SetAdminPIN stores the bcrypt hash of the configured admin PIN.
func SetAdminPIN(pin string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	pinHash = hash
	return nil
}

// CheckAdminPIN compares an entered PIN against the stored hash.
func CheckAdminPIN(pin string) bool {
	if len(pinHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(pinHash, []byte(pin)) == nil
}
