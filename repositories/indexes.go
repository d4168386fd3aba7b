package repositories

import "promisewatch-be/docstore"

// Indexes backs the filtered reads issued by the repositories.
var Indexes = []docstore.Index{
	{Collection: PromisesCollection, Fields: []string{"party"}},
	{Collection: PromisesCollection, Fields: []string{"category"}},
	{Collection: PromisesCollection, Fields: []string{"status"}},
	{Collection: PromisesCollection, Fields: []string{"priority"}},
	{Collection: ReportsCollection, Fields: []string{"promiseId", "createdAt"}},
	{Collection: EconomicDataCollection, Fields: []string{"indicator", "date"}},
}
