package types

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	Username string `json:"username"`
}

type LoginResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
