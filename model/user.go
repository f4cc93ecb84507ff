// model/user.go
package model

import "time"

// User is created on the first login with a given client ID.
// client_type: 0 is the admin, 1 is the normal user, -1 is the banned user.
type User struct {
	ID         int       `json:"id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"created_at"`
	ClientID   string    `json:"client_id" gorm:"uniqueIndex;size:255;not null"`
	ClientType int       `json:"client_type" gorm:"not null;default:1"`
}
