package request

type CreatePropertyRequest struct {
	Name       string   `json:"name" binding:"required"`
	Location   string   `json:"location" binding:"required"`
	Price      int      `json:"price" binding:"required,min=1"`
	Rating     float64  `json:"rating" binding:"min=0,max=5"`
	Reviews    int      `json:"reviews" binding:"min=0"`
	Image      string   `json:"image"`
	Amenities  []string `json:"amenities"`
	Available  bool     `json:"available"`
	OwnerEmail string   `json:"ownerEmail" binding:"omitempty,email"`
}

// UpdatePropertyRequest carries partial field updates; nil fields are left
// untouched by the store.
type UpdatePropertyRequest struct {
	Name      *string   `json:"name,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Price     *int      `json:"price,omitempty" binding:"omitempty,min=1"`
	Rating    *float64  `json:"rating,omitempty" binding:"omitempty,min=0,max=5"`
	Reviews   *int      `json:"reviews,omitempty" binding:"omitempty,min=0"`
	Image     *string   `json:"image,omitempty"`
	Amenities *[]string `json:"amenities,omitempty"`
	Available *bool     `json:"available,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

type MockLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type HeroSelectRequest struct {
	Index int `json:"index" binding:"min=0"`
}
