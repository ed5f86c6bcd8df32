package auth

import (
	"net/http"

	"garage/backend/foundation/web"
	"garage/backend/internal/commands"
	"garage/backend/internal/repository/postgres/account"
)

type Controller struct {
	account        Account
	privatePEMPath string
}

func NewController(account Account, privatePEMPath string) *Controller {
	return &Controller{account: account, privatePEMPath: privatePEMPath}
}

func (ac Controller) SignIn(c *web.Context) error {
	var request account.SignInRequest
	if err := c.BindFunc(&request, "Login", "Password"); err != nil {
		return c.RespondError(err)
	}

	detail, err := ac.account.GetByCredentials(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	accessToken, refreshToken, err := commands.GenToken(commands.TokenClaims{
		ID:   detail.ID,
		Role: detail.Role,
	}, ac.privatePEMPath)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": account.SignInResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			Role:         detail.Role,
		},
		"status": true,
	}, http.StatusOK)
}

func (ac Controller) RefreshToken(c *web.Context) error {
	var request account.RefreshTokenRequest
	if err := c.BindFunc(&request, "AccessToken", "RefreshToken"); err != nil {
		return c.RespondError(err)
	}

	_, refreshClaims, err := commands.VerifyTokens(*request.AccessToken, *request.RefreshToken, ac.privatePEMPath)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	detail, err := ac.account.GetById(c.Ctx, refreshClaims.UserId)
	if err != nil {
		return c.RespondError(err)
	}

	accessToken, refreshToken, err := commands.GenToken(commands.TokenClaims{
		ID:   detail.ID,
		Role: detail.Role,
	}, ac.privatePEMPath)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": account.SignInResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			Role:         detail.Role,
		},
		"status": true,
	}, http.StatusOK)
}
