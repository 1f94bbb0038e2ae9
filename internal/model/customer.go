package model

import "time"

// Customer is a campaign recipient. Phone number and email are both
// optional, but at least one must be present for dispatch to succeed.
type Customer struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	TemplateID  int64     `gorm:"column:template_id;index"`
	PhoneNumber string    `gorm:"column:phone_number;index"`
	Email       string    `gorm:"column:email;index"`
	FirstName   string    `gorm:"column:first_name"`
	LastName    string    `gorm:"column:last_name"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`

	Template MessageTemplate `gorm:"foreignKey:TemplateID"`
}

// CustomerFields are the customer attributes a template placeholder may
// reference, matching the required CSV upload headers.
var CustomerFields = []string{"first_name", "last_name", "phone_number", "email"}

// Field returns the value of a placeholder-addressable field, and whether
// the name is one of CustomerFields.
func (c *Customer) Field(name string) (string, bool) {
	switch name {
	case "first_name":
		return c.FirstName, true
	case "last_name":
		return c.LastName, true
	case "phone_number":
		return c.PhoneNumber, true
	case "email":
		return c.Email, true
	default:
		return "", false
	}
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
