package request

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required,min=3,max=32"`
	DisplayName string `json:"display_name,omitempty"`
	Password    string `json:"password" binding:"required,min=8"`
}

// Identity is a username or an email address.
type LoginRequest struct {
	Identity string `json:"identity" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
