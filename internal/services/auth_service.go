package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aulaplus/adminpanel/internal/auth"
	"github.com/aulaplus/adminpanel/internal/models"
)

// AuthService verifies identity tokens and resolves the role a session should
// carry. Credentials themselves live in the external identity provider; this
// service only checks the token signature and the account document.
type AuthService struct {
	users      *mongo.Collection
	secret     string
	adminEmail string
}

func NewAuthService(db *mongo.Database, secret, adminEmail string) *AuthService {
	return &AuthService{
		users:      db.Collection("users"),
		secret:     secret,
		adminEmail: adminEmail,
	}
}

// Login verifies the token and resolves the session role. The configured
// admin email short-circuits to admin without touching the user collection.
func (s *AuthService) Login(ctx context.Context, tokenString string) (role, email string, err error) {
	claims, err := auth.ParseToken(tokenString, s.secret)
	if err != nil {
		return "", "", err
	}

	var user *models.User
	if s.adminEmail == "" || claims.Email != s.adminEmail {
		findCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		var doc models.User
		err = s.users.FindOne(findCtx, bson.M{"email": claims.Email}).Decode(&doc)
		switch {
		case err == nil:
			user = &doc
		case errors.Is(err, mongo.ErrNoDocuments):
			// leave user nil, sessionRole answers not-found
		default:
			return "", "", providerError(err)
		}
	}

	role, err = sessionRole(s.adminEmail, claims, user)
	if err != nil {
		return "", "", err
	}
	return role, claims.Email, nil
}

// sessionRole decides the role for a verified token. The admin email wins
// unconditionally; otherwise the account document gates on the active flag
// and the role comes from the token claim, then the stored role, then plain
// user. A nil user means no account document exists for the email.
func sessionRole(adminEmail string, claims *auth.Claims, user *models.User) (string, error) {
	if adminEmail != "" && claims.Email == adminEmail {
		return models.RoleAdmin, nil
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if !user.Active {
		return "", ErrInactiveAccount
	}
	if claims.Role != "" {
		return claims.Role, nil
	}
	if user.Role != "" {
		return user.Role, nil
	}
	return models.RoleUser, nil
}
