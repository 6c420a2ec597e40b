// Package entity holds the media asset domain types.
package entity

import "time"

// Asset is an uploaded media file. The binary lives in object storage under
// StorageKey; this record carries its metadata. OwnerName is denormalized at
// upload time so listings need no join.
type Asset struct {
	ID         string
	Title      string
	FileName   string
	FileURL    string
	StorageKey string
	MimeType   string
	Visibility Visibility
	OwnerID    string
	OwnerName  string
	CreatedAt  time.Time
}
