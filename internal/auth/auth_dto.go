package auth

type APIKeyRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type APIKeyResponse struct {
	Username string `json:"username"`
	APIKey   string `json:"apiKey"`
}
