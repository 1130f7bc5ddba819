package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLotRequest body camelCase para POST /api/farmer/lots.
// FarmerID solo lo honra el servidor cuando el caller es admin.
type CreateLotRequest struct {
	LotName        string           `json:"lotName" validate:"required"`
	CropYear       int              `json:"cropYear" validate:"required"`
	Country        string           `json:"country" validate:"required"`
	Region         *string          `json:"region"`
	AltitudeMeters *int             `json:"altitudeMeters"`
	Grade          *string          `json:"grade"`
	Certification  *string          `json:"certification"`
	Process        *string          `json:"process"`
	Variety        *string          `json:"variety"`
	HarvestMonth   *string          `json:"harvestMonth"`
	ReadyLocation  *string          `json:"readyLocation"`
	TastingNotes   *string          `json:"tastingNotes"`
	BagsAvailable  *int             `json:"bagsAvailable"`
	BagSizeKg      *decimal.Decimal `json:"bagSizeKg"`
	CupScore       *decimal.Decimal `json:"cupScore"`
	PricePerKg     *decimal.Decimal `json:"pricePerKg"`
	Currency       *string          `json:"currency"`
	Visibility     *string          `json:"visibility"`
	FarmerID       *string          `json:"farmerId"`
}

// UpdateLotRequest body parcial para PUT /api/farmer/lots/:id. Todos los
// campos son opcionales; las claves no reconocidas se ignoran.
type UpdateLotRequest struct {
	LotName        *string          `json:"lotName"`
	CropYear       *int             `json:"cropYear"`
	Country        *string          `json:"country"`
	Region         *string          `json:"region"`
	AltitudeMeters *int             `json:"altitudeMeters"`
	Grade          *string          `json:"grade"`
	Certification  *string          `json:"certification"`
	Process        *string          `json:"process"`
	Variety        *string          `json:"variety"`
	HarvestMonth   *string          `json:"harvestMonth"`
	ReadyLocation  *string          `json:"readyLocation"`
	TastingNotes   *string          `json:"tastingNotes"`
	BagsAvailable  *int             `json:"bagsAvailable"`
	BagSizeKg      *decimal.Decimal `json:"bagSizeKg"`
	CupScore       *decimal.Decimal `json:"cupScore"`
	PricePerKg     *decimal.Decimal `json:"pricePerKg"`
	Currency       *string          `json:"currency"`
	Visibility     *string          `json:"visibility"`
	Status         *string          `json:"status"`
}

// LotResponse fila de lote con nombres de columna (snake_case), como la
// expone la API pública.
type LotResponse struct {
	ID             string           `json:"id"`
	FarmerID       string           `json:"farmer_id"`
	LotName        string           `json:"lot_name"`
	CropYear       int              `json:"crop_year"`
	Country        string           `json:"country"`
	Region         *string          `json:"region"`
	AltitudeMeters *int             `json:"altitude_meters"`
	Grade          *string          `json:"grade"`
	Certification  *string          `json:"certification"`
	Process        *string          `json:"process"`
	Variety        *string          `json:"variety"`
	HarvestMonth   *string          `json:"harvest_month"`
	ReadyLocation  *string          `json:"ready_location"`
	TastingNotes   *string          `json:"tasting_notes"`
	BagsAvailable  int              `json:"bags_available"`
	BagSizeKg      decimal.Decimal  `json:"bag_size_kg"`
	CupScore       *decimal.Decimal `json:"cup_score"`
	PricePerKg     *decimal.Decimal `json:"price_per_kg"`
	Currency       string           `json:"currency"`
	Status         string           `json:"status"`
	Visibility     string           `json:"visibility"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// LotEnvelope envoltura {lot: ...}.
type LotEnvelope struct {
	Lot LotResponse `json:"lot"`
}

// LotListEnvelope envoltura {lots: [...]}.
type LotListEnvelope struct {
	Lots []LotResponse `json:"lots"`
}
