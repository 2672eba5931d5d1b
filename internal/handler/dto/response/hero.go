package response

import "azulhomes/internal/usecase/hero"

type HeroResponse struct {
	Index  int      `json:"index"`
	Image  string   `json:"image"`
	Images []string `json:"images"`
}

func FromHeroState(s hero.State) *HeroResponse {
	return &HeroResponse{
		Index:  s.Index,
		Image:  s.Image,
		Images: s.Images,
	}
}
