package dto

import "time"

// ContactRequest body público de POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Reason  string `json:"reason"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// ContactCreatedResponse ack de creación.
type ContactCreatedResponse struct {
	OK        bool      `json:"ok"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessageResponse fila de mensaje para el listado admin.
type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Reason    string    `json:"reason"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactListEnvelope envoltura {ok, items}.
type ContactListEnvelope struct {
	OK    bool                     `json:"ok"`
	Items []ContactMessageResponse `json:"items"`
}
