package dto

import "github.com/brunodmn/betoffice/internal/betmath"

type DashboardResponseDTO struct {
	Month    string          `json:"month" example:"2026-08"`
	General  betmath.Stats   `json:"general"`
	Sections []betmath.Group `json:"sections"`
}

type AnalyticsResponseDTO struct {
	Month       string          `json:"month" example:"2026-08"`
	General     betmath.Stats   `json:"general"`
	Operators   []betmath.Group `json:"operators"`
	Sports      []betmath.Group `json:"sports"`
	Bookmakers  []betmath.Group `json:"bookmakers"`
	OperatorQty int             `json:"operator_count"`
}

type DREResponseDTO struct {
	Month string      `json:"month" example:"2026-08"`
	DRE   betmath.DRE `json:"dre"`
}

type CaixaResponseDTO struct {
	Month string        `json:"month" example:"2026-08"`
	Caixa betmath.Caixa `json:"caixa"`
}
