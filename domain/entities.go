package domain

import "time"

// Registration represents one submitted registration form
type Registration struct {
	ID        uint
	Name      string
	Phone     string
	Email     string
	City      string
	Address   string
	CreatedAt time.Time
}

// SubmissionInput carries the raw fields of a public form submission
type SubmissionInput struct {
	Name    string
	Phone   string
	Email   string
	City    string
	Address string
}

// RegistrationPage is one page of the admin listing
type RegistrationPage struct {
	Data  []Registration
	Total int64
	Page  int
	Pages int
}

// AdminSession represents an authenticated admin browser session
type AdminSession struct {
	ID        string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}
