package models

// QRConfig is the singleton payment-QR document, stored under a fixed _id so
// updates are plain upserts.
type QRConfig struct {
	ID  string `bson:"_id" json:"-"`
	URL string `bson:"url" json:"url"`
}

// QRConfigID is the fixed _id of the singleton document.
const QRConfigID = "qr"
