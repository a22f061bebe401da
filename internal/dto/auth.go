package dto

type RegisterRequestDTO struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SessionResponseDTO struct {
	Token     string `json:"token"`
	ProfileID string `json:"profile_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}
