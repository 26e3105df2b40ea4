package models

// MenuTypes is the closed set of category tags a menu item may carry.
var MenuTypes = []string{"Burgers", "Pizza", "Canadian", "Veggi"}

// Menu represents a single menu item belonging to a restaurant.
// RestaurantID is an advisory reference: the store does not enforce that it
// points at an existing restaurant.
type Menu struct {
	ID           string   `json:"id" bson:"_id,omitempty"`
	Name         string   `json:"name" bson:"name" validate:"required"`
	Description  string   `json:"description" bson:"description" validate:"required"`
	// Price carries no required tag: a present zero price is legitimate and
	// must survive both create and patch.
	Price        float64  `json:"price" bson:"price"`
	Image        string   `json:"image,omitempty" bson:"image,omitempty"`
	Rating       float64  `json:"rating" bson:"rating"`
	RestaurantID string   `json:"restaurantId" bson:"restaurantId" validate:"required"`
	Type         []string `json:"type" bson:"type" validate:"required,min=1,dive,oneof=Burgers Pizza Canadian Veggi"`
}

// MenuPatch carries a partial update with presence semantics, mirroring
// RestaurantPatch.
type MenuPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Type        []string `json:"type"`
	Image       *string  `json:"image"`
	Rating      *float64 `json:"rating"`
}

// Apply overwrites the menu item's fields with the patch's present values.
func (p MenuPatch) Apply(m *Menu) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Type != nil {
		m.Type = p.Type
	}
	if p.Image != nil {
		m.Image = *p.Image
	}
	if p.Rating != nil {
		m.Rating = *p.Rating
	}
}
