package medicine

import "go.mongodb.org/mongo-driver/bson/primitive"

type Medicine struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Generic     string             `bson:"generic,omitempty" json:"generic,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Category    string             `bson:"category" json:"category"`
	Company     string             `bson:"company,omitempty" json:"company,omitempty"`
	Unit        string             `bson:"unit,omitempty" json:"unit,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Discount    float64            `bson:"discount" json:"discount"`
	SellerEmail string             `bson:"sellerEmail" json:"sellerEmail"`
}

// DiscountedPrice applies the discount percentage to the unit price.
func (m *Medicine) DiscountedPrice() float64 {
	if m.Discount <= 0 {
		return m.Price
	}
	return m.Price * (1 - m.Discount/100)
}
