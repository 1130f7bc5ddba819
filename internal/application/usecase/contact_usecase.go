package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/equitycoffee/equity-coffee-api/internal/application/dto"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/entity"
	"github.com/equitycoffee/equity-coffee-api/internal/domain/repository"
)

// ContactUseCase mensajes públicos de contacto y su listado admin.
type ContactUseCase struct {
	contactRepo repository.ContactRepository
}

// NewContactUseCase construye el caso de uso de contacto.
func NewContactUseCase(contactRepo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{contactRepo: contactRepo}
}

// Create guarda un mensaje entrante junto con IP y user-agent del emisor.
func (uc *ContactUseCase) Create(in dto.ContactRequest, ip, userAgent string) (*dto.ContactCreatedResponse, error) {
	msg := &entity.ContactMessage{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Reason:    in.Reason,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	if ip != "" {
		msg.IP = &ip
	}
	if userAgent != "" {
		msg.UserAgent = &userAgent
	}

	if err := uc.contactRepo.Create(msg); err != nil {
		return nil, err
	}
	return &dto.ContactCreatedResponse{
		OK:        true,
		ID:        msg.ID,
		CreatedAt: msg.CreatedAt,
	}, nil
}

// ListRecent devuelve los mensajes más recientes para el panel admin.
func (uc *ContactUseCase) ListRecent(limit int) (*dto.ContactListEnvelope, error) {
	msgs, err := uc.contactRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, dto.ContactMessageResponse{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Reason:    m.Reason,
			Phone:     m.Phone,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}
	return &dto.ContactListEnvelope{OK: true, Items: out}, nil
}
