package api

// CoachLoginRequest is the payload for POST /v1/coach/login.
type CoachLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// CoachLoginResponse carries the access token granting the coach view.
type CoachLoginResponse struct {
	AccessToken string `json:"access_token"`
}
