package repository

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"gantavya-backend/database"
	"gantavya-backend/internal/models"
)

func GetAdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	var admin models.Admin
	err := database.DB.Collection("admins").
		FindOne(ctx, bson.M{"email": strings.ToLower(email)}).
		Decode(&admin)
	return admin, err
}
