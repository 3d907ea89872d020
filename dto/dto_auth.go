package dto

type LoginRequest struct {
	Email    string `json:"email"    example:"ops@gantavya.com"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}
