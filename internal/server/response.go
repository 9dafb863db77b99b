package server

import "outfitai/internal/models"

type StyleResponse struct {
	Item    models.ClothingItem `json:"item"`
	Summary string              `json:"summary"`
	Advice  string              `json:"advice"`
}

type ModelsResponse struct {
	Models []string `json:"models"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
