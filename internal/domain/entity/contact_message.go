package entity

import "time"

// ContactMessage es un mensaje anónimo entrante, legible solo por admin.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Reason    string
	Phone     string
	Message   string
	IP        *string
	UserAgent *string
	CreatedAt time.Time
}
