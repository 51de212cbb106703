package cart

import "go.mongodb.org/mongo-driver/bson/primitive"

// Item is one medicine placed in a buyer's cart.
type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MedicineID  string             `bson:"medicineId" json:"medicineId"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Company     string             `bson:"company,omitempty" json:"company,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Discount    float64            `bson:"discount" json:"discount"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	BuyerEmail  string             `bson:"buyerEmail" json:"buyerEmail"`
	SellerEmail string             `bson:"sellerEmail" json:"sellerEmail"`
}
