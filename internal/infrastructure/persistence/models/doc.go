// Package models contains the GORM models backing the task, taxonomy,
// attachment, notification and settings tables. They are kept separate from
// the domain entities and converted at the repository boundary.
package models
