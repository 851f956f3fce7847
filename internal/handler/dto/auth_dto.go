package dto

// RegisterRequest is the register payload.
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=1"`
	Name     *string `json:"name"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserDTO is the public view of an account.
type UserDTO struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// AuthResponse carries a freshly issued token and its user.
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
