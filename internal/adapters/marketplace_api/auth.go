package marketplace_api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/numanharith/propertyhub-frontend/internal/core/domain"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	logger := c.logger(ctx, "Login")

	var resp authResponse
	err := c.call(ctx, logger, http.MethodPost, "/auth/login", "", credentialsRequest{Email: creds.Email, Password: creds.Password}, &resp, nil)
	if err != nil {
		return nil, err
	}
	if resp.JwtToken == "" {
		err := fmt.Errorf("%w: login response has no token", domain.ErrUnauthorized)
		logger.Error("Marketplace API accepted credentials without a token", err, nil)
		return nil, err
	}

	result := resp.toDomain()
	logger.Info("Login accepted by marketplace API", port.Fields{"user_id": result.User.ID, "role": result.User.Role})
	return result, nil
}

// Register может вернуть ответ без токена, тогда пользователь входит отдельно.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	logger := c.logger(ctx, "Register")

	body := registrationRequest{
		Username:  reg.Username,
		Email:     reg.Email,
		Password:  reg.Password,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		UserType:  string(reg.UserType),
	}

	var resp authResponse
	if err := c.call(ctx, logger, http.MethodPost, "/auth/register", "", body, &resp, nil); err != nil {
		return nil, err
	}

	result := resp.toDomain()
	if result.User.Email == "" {
		result.User.Email = reg.Email
	}
	if result.User.Username == "" {
		result.User.Username = reg.Username
	}
	logger.Info("Registration accepted by marketplace API", port.Fields{"has_token": result.Token != ""})
	return result, nil
}
