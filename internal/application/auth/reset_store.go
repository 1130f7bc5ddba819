package auth

import (
	"sync"
	"time"
)

// ResetTokenStore guarda tokens de restablecimiento de contraseña
// (token -> usuario + expiración). Es un puerto inyectable: en despliegues
// multi-instancia se reemplaza por un store compartido; la implementación
// por defecto vive en memoria del proceso, así que un reinicio invalida
// todos los resets pendientes (TTL corto, aceptable en un solo nodo).
type ResetTokenStore interface {
	Save(token, userID string, ttl time.Duration)
	// Consume valida presencia y expiración y elimina el token: es de un
	// solo uso. ok=false cubre token desconocido, expirado o ya consumido.
	Consume(token string) (userID string, ok bool)
}

type resetEntry struct {
	userID    string
	expiresAt time.Time
}

// MemoryResetStore implementación en memoria de ResetTokenStore.
type MemoryResetStore struct {
	mu     sync.Mutex
	tokens map[string]resetEntry
}

var _ ResetTokenStore = (*MemoryResetStore)(nil)

// NewMemoryResetStore construye el store en memoria.
func NewMemoryResetStore() *MemoryResetStore {
	return &MemoryResetStore{tokens: make(map[string]resetEntry)}
}

// Save registra el token y programa su expulsión al vencer el TTL.
func (s *MemoryResetStore) Save(token, userID string, ttl time.Duration) {
	s.mu.Lock()
	s.tokens[token] = resetEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()

	time.AfterFunc(ttl, func() {
		s.mu.Lock()
		delete(s.tokens, token)
		s.mu.Unlock()
	})
}

// Consume valida y elimina el token en una sola operación bajo lock.
func (s *MemoryResetStore) Consume(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.tokens[token]
	if !ok {
		return "", false
	}
	delete(s.tokens, token)
	if time.Now().After(entry.expiresAt) {
		return "", false
	}
	return entry.userID, true
}
