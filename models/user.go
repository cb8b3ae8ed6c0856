package models

import "time"

// User is an identity record. The password column holds a bcrypt hash and is
// never serialized.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"type:varchar(255);unique;not null"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at"`
}
