package models

// User is the canonical person identity record.
type User struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	WhatsappPhone string `json:"whatsapp_phone,omitempty"`
	Gender        string `json:"gender,omitempty"`
	DateOfBirth   string `json:"date_of_birth,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	District      string `json:"district,omitempty"`
	State         string `json:"state,omitempty"`
	Pincode       string `json:"pincode,omitempty"`
	Country       string `json:"country,omitempty"`
	Role          string `json:"role,omitempty"`
	ConsentCheck  bool   `json:"consent_check,omitempty"`
}
