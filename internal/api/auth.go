package api

import (
	"context"
	"fmt"

	"github.com/leadline-crm/leadline/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	if err := c.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return resp.Token, nil
}

// Me returns the employee the current credential belongs to.
func (c *Client) Me(ctx context.Context) (model.Employee, error) {
	var user model.Employee
	if err := c.Get(ctx, "/auth/me", nil, &user); err != nil {
		return model.Employee{}, err
	}
	return user, nil
}
