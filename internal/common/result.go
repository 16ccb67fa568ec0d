package common

// Result is the summary of a single insert, update or delete statement.
// InsertId is only set by inserts.
type Result struct {
	AffectedRows int64 `json:"affectedRows"`
	InsertId     int   `json:"insertId,omitempty"`
}
