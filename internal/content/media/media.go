// Copyright (c) 2026 Prachasan Foundation. All rights reserved.

// Package media defines the shared image attachment type used by every
// content record kind.
package media

// Image is a stored image attachment belonging to exactly one content record.
type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
