package dto

type BookmakerRequestDTO struct {
	Name    string `json:"name" validate:"required"`
	LogoURL string `json:"logo_url,omitempty"`
	Active  *bool  `json:"active,omitempty"`
}

type BookmakerResponseDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
	Active  bool   `json:"active"`
}

type SoftwareToolRequestDTO struct {
	Name   string `json:"name" validate:"required"`
	Active *bool  `json:"active,omitempty"`
}

type SoftwareToolResponseDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
