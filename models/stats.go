package models

// Stats is the fixed-shape summary served by the statistics endpoint.
type Stats struct {
	TotalPromises    int                     `json:"totalPromises"`
	TotalReports     int                     `json:"totalReports"`
	ByParty          map[Party]int           `json:"byParty"`
	ByStatus         map[PromiseStatus]int   `json:"byStatus"`
	ByCategory       map[PromiseCategory]int `json:"byCategory"`
	FlagshipPromises int                     `json:"flagshipPromises"`
}
