package restaurant

import "go.mongodb.org/mongo-driver/bson/primitive"

// PageSize is the fixed number of records returned per list page.
const PageSize = 10

// Restaurant is the sole entity managed by the service.
//
// ID is assigned by the store at insert time and never changes. The five
// business fields are all required; see Validate for the evaluation rules.
type Restaurant struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Address      string             `json:"address" bson:"address"`
	PhoneNumber  string             `json:"phoneNumber" bson:"phoneNumber"`
	EmailAddress string             `json:"emailAddress" bson:"emailAddress"`
	Rating       float64            `json:"rating" bson:"rating"`
}

// Filter holds the optional exact-match predicates for list queries.
// A nil/zero field places no constraint on that attribute.
type Filter struct {
	Address      string
	PhoneNumber  string
	EmailAddress string
	Rating       *float64
}
