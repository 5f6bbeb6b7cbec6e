package user

import "github.com/KirkDiggler/tavern/internal/models"

type CreateUserInput struct {
	User *models.User
}

type GetUserInput struct {
	UserID string
}

type GetUserByLoginInput struct {
	// Login matches either the username or the email
	Login string
}
