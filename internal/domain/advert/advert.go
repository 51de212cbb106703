package advert

import "go.mongodb.org/mongo-driver/bson/primitive"

// Advertisement is a seller-submitted banner request. Slide marks whether an
// admin has promoted it into the storefront slider.
type Advertisement struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MedicineName string             `bson:"medicineName" json:"medicineName"`
	Image        string             `bson:"image" json:"image"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	SellerEmail  string             `bson:"sellerEmail" json:"sellerEmail"`
	Slide        bool               `bson:"slide" json:"slide"`
}
