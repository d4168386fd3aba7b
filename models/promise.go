package models

import (
	"time"
)

// Party enum
type Party string

const (
	NDC Party = "NDC"
	NPP Party = "NPP"
)

// Parties lists the parties whose manifestos are tracked.
var Parties = []Party{NDC, NPP}

// PromiseCategory enum
type PromiseCategory string

const (
	Economy        PromiseCategory = "economy"
	Education      PromiseCategory = "education"
	Health         PromiseCategory = "health"
	Infrastructure PromiseCategory = "infrastructure"
	Agriculture    PromiseCategory = "agriculture"
	Governance     PromiseCategory = "governance"
	Energy         PromiseCategory = "energy"
)

// TrackedCategories is the fixed category list reported by the statistics endpoint.
var TrackedCategories = []PromiseCategory{
	Economy, Education, Health, Infrastructure, Agriculture, Governance, Energy,
}

// PromisePriority enum
type PromisePriority string

const (
	Flagship PromisePriority = "flagship"
	High     PromisePriority = "high"
	Medium   PromisePriority = "medium"
	Low      PromisePriority = "low"
)

// PromiseStatus enum
type PromiseStatus string

const (
	StatusPending   PromiseStatus = "pending"
	StatusProgress  PromiseStatus = "progress"
	StatusFulfilled PromiseStatus = "fulfilled"
	StatusBroken    PromiseStatus = "broken"
	StatusPartial   PromiseStatus = "partial"
)

// TrackedStatuses lists every status counted by the statistics endpoint.
var TrackedStatuses = []PromiseStatus{
	StatusPending, StatusProgress, StatusFulfilled, StatusBroken, StatusPartial,
}

// NationalRegion marks a promise with nationwide scope.
const NationalRegion = "National"

type Timeline struct {
	Start    string `bson:"start" json:"start"`
	End      string `bson:"end" json:"end"`
	Duration string `bson:"duration,omitempty" json:"duration,omitempty"`
}

type PromiseMetrics struct {
	Target     string `bson:"target" json:"target"`
	Measurable bool   `bson:"measurable" json:"measurable"`
	Verifiable bool   `bson:"verifiable" json:"verifiable"`
}

// Promise represents a manifesto commitment tracked by citizens.
// ID is assigned by the document store on insert; Ref is the manifesto
// table's own identifier and carries no uniqueness guarantee in the store.
type Promise struct {
	ID               string          `bson:"_id,omitempty" json:"id"`
	Ref              string          `bson:"ref,omitempty" json:"ref,omitempty"`
	Party            Party           `bson:"party" json:"party"`
	Year             int             `bson:"year" json:"year"`
	Title            string          `bson:"title" json:"title"`
	Description      string          `bson:"description" json:"description"`
	Category         PromiseCategory `bson:"category" json:"category"`
	Priority         PromisePriority `bson:"priority" json:"priority"`
	Status           PromiseStatus   `bson:"status" json:"status"`
	Timeline         Timeline        `bson:"timeline" json:"timeline"`
	Region           string          `bson:"region" json:"region"`
	District         string          `bson:"district" json:"district"`
	Budget           *string         `bson:"budget" json:"budget"`
	Source           string          `bson:"source" json:"source"`
	EvidenceRequired []string        `bson:"evidenceRequired" json:"evidenceRequired"`
	Metrics          PromiseMetrics  `bson:"metrics" json:"metrics"`
	ActualOutcome    string          `bson:"actualOutcome,omitempty" json:"actualOutcome,omitempty"`
	Views            int64           `bson:"views" json:"views"`
	Reports          int64           `bson:"reports" json:"reports"`
	Likes            int64           `bson:"likes" json:"likes"`
	CreatedAt        time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// IsNational reports whether the promise applies to the whole country.
func (p Promise) IsNational() bool {
	return p.Region == NationalRegion
}
