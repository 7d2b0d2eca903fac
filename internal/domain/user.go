package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User owns an ordered log of exercise references. The log keeps insertion
// order (the order exercises were logged, not their dates) and is never
// deduplicated.
type User struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username string               `bson:"username" json:"username"`
	Log      []primitive.ObjectID `bson:"log" json:"log"`
}
