package payment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	BuyerEmail    string             `bson:"buyerEmail" json:"buyerEmail"`
	SellerEmails  []string           `bson:"sellerEmails" json:"sellerEmails"`
	MedicineIDs   []string           `bson:"medicineIds" json:"medicineIds"`
	CartIDs       []string           `bson:"cartIds" json:"cartIds"`
	Amount        float64            `bson:"amount" json:"amount"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
