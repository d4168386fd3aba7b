package models

import (
	"time"
)

// ReportStatus enum
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportVerified ReportStatus = "verified"
	ReportRejected ReportStatus = "rejected"
)

type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Report represents a citizen-filed breach report
type Report struct {
	ID        string       `bson:"_id,omitempty" json:"id"`
	UID       string       `bson:"uid" json:"uid"`
	PromiseID string       `bson:"promiseId,omitempty" json:"promiseId,omitempty"`
	Category  string       `bson:"category,omitempty" json:"category,omitempty"`
	Title     string       `bson:"title" json:"title"`
	Details   string       `bson:"details" json:"details"`
	PhotoURL  *string      `bson:"photoUrl" json:"photoUrl"`
	Location  *GeoPoint    `bson:"location" json:"location"`
	Status    ReportStatus `bson:"status" json:"status"`
	Verified  bool         `bson:"verified" json:"verified"`
	Likes     int64        `bson:"likes" json:"likes"`
	Views     int64        `bson:"views" json:"views"`
	Upvotes   int64        `bson:"upvotes" json:"upvotes"`
	Downvotes int64        `bson:"downvotes" json:"downvotes"`
	CreatedAt time.Time    `bson:"createdAt" json:"createdAt"`
}

// ReportInput carries the citizen-supplied fields of a new report.
type ReportInput struct {
	Title     string    `json:"title" validate:"required,max=200"`
	Details   string    `json:"details" validate:"required,max=2000"`
	PromiseID string    `json:"promiseId,omitempty"`
	Category  string    `json:"category,omitempty"`
	PhotoURL  *string   `json:"photoUrl,omitempty" validate:"omitempty,url"`
	Location  *GeoPoint `json:"location,omitempty"`
}
