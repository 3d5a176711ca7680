// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisAttempt is the predicate function for analysisattempt builders.
type AnalysisAttempt func(*sql.Selector)

// UsageAccount is the predicate function for usageaccount builders.
type UsageAccount func(*sql.Selector)
