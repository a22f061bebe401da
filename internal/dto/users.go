package dto

type CreateUserRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin operator"`
}

type CreatedUserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type CreateUserResponseDTO struct {
	Success bool           `json:"success"`
	User    CreatedUserDTO `json:"user"`
}

type ChangeRoleRequestDTO struct {
	Role string `json:"role" validate:"required,oneof=admin operator"`
}

type OperatorResponseDTO struct {
	ProfileID string `json:"profile_id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
}
