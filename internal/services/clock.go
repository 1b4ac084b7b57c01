package services

import "time"

// nowStamp returns the current UTC time as the RFC3339 string stored in
// created_at/updated_at columns. Same-format strings compare correctly
// as text, which the repos rely on for ordering.
func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
