package catalog

import "go.mongodb.org/mongo-driver/bson/primitive"

// Slider is a promotional banner shown on the storefront.
type Slider struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Active      bool               `bson:"active" json:"active"`
}

type Category struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}

type UpdateSliderInput struct {
	Title       *string `json:"title,omitempty"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

type UpdateCategoryInput struct {
	Name  *string `json:"name,omitempty"`
	Image *string `json:"image,omitempty"`
}
