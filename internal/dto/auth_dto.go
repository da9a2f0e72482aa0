package dto

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Username string `json:"username" binding:"required,username"`
}

type SignupResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

type TokenRequest struct {
	Username         string `json:"username" binding:"required,username"`
	ConfirmationCode string `json:"confirmation_code" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
