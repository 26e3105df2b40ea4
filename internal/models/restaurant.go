package models

// Restaurant represents a restaurant listing in the directory.
type Restaurant struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	Name        string  `json:"name" bson:"name" validate:"required,min=3,max=30"`
	Description string  `json:"description" bson:"description" validate:"required"`
	Address     string  `json:"address" bson:"address" validate:"required"`
	Postalcode  string  `json:"postalcode" bson:"postalcode" validate:"required"`
	Ratings     float64 `json:"ratings" bson:"ratings"`
	Image       string  `json:"image,omitempty" bson:"image,omitempty"`
}

// RestaurantPatch carries a partial update. A nil field means "leave the stored
// value alone"; a non-nil field overwrites it, even with a zero value.
type RestaurantPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	Postalcode  *string  `json:"postalcode"`
	Ratings     *float64 `json:"ratings"`
	Image       *string  `json:"image"`
}

// Apply overwrites the restaurant's fields with the patch's present values.
func (p RestaurantPatch) Apply(r *Restaurant) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Address != nil {
		r.Address = *p.Address
	}
	if p.Postalcode != nil {
		r.Postalcode = *p.Postalcode
	}
	if p.Ratings != nil {
		r.Ratings = *p.Ratings
	}
	if p.Image != nil {
		r.Image = *p.Image
	}
}
