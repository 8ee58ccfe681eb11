package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// User is the profile document of a registered trader
type User struct {
	ID         string       `json:"id" db:"id"`
	Email      string       `json:"email" db:"email"`
	FirstName  string       `json:"firstName" db:"first_name"`
	LastName   string       `json:"lastName" db:"last_name"`
	Phone      string       `json:"phone,omitempty" db:"phone"`
	Timezone   string       `json:"timezone,omitempty" db:"timezone"`
	Settings   UserSettings `json:"settings" db:"settings"`
	Challenges []string     `json:"challenges" db:"-"`
	CreatedAt  time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time    `json:"updatedAt" db:"updated_at"`
}

// UserSettings enumerates the user preferences that can be changed
type UserSettings struct {
	EmailNotifications bool   `json:"emailNotifications"`
	SMSNotifications   bool   `json:"smsNotifications"`
	Theme              string `json:"theme,omitempty"`
	Language           string `json:"language,omitempty"`
}

// Value implements driver.Valuer so settings are stored as JSONB
func (s UserSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *UserSettings) Scan(src interface{}) error {
	return scanJSON(src, s)
}

// UserProfileUpdate lists the mutable profile fields. Nil means unchanged.
type UserProfileUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Timezone  *string `json:"timezone"`
}

// IsEmpty reports whether the update carries no field
func (u UserProfileUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Phone == nil && u.Timezone == nil
}

// DisplayName returns "first last"
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

func scanJSON(src interface{}, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported type %T for JSON column", src)
	}
}
