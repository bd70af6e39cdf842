// Package admin holds the privileged operations that were only ever reachable
// behind the admin role guard: user removal, commission status updates and
// the realtor dashboard listing.
package admin

import "gorm.io/gorm"

type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}
