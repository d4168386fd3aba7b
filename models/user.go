package models

import "time"

// User is an anonymous session holder. The uid is the store id and the
// only identity a report carries.
type User struct {
	UID       string    `bson:"_id" json:"uid"`
	Anonymous bool      `bson:"anonymous" json:"anonymous"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
