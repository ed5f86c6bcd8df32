package account

type SignInRequest struct {
	Login    *string `json:"login" form:"login"`
	Password *string `json:"password" form:"password"`
}

type SignInResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
}

type RefreshTokenRequest struct {
	AccessToken  *string `json:"access_token" form:"access_token"`
	RefreshToken *string `json:"refresh_token" form:"refresh_token"`
}

type DetailResponse struct {
	ID       int
	Login    string
	Password string
	Role     string
}
