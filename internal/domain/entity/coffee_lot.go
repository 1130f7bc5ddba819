package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un lote. Las transiciones las dirige el caller: el servidor no
// valida que el cambio sea legal desde el estado actual (permisividad
// heredada del producto, ver DESIGN.md).
const (
	LotStatusDraft     = "draft"
	LotStatusPublished = "published"
	LotStatusHidden    = "hidden"
	LotStatusBooked    = "booked"
	LotStatusSold      = "sold"
)

// Visibilidad de un lote, independiente del estado.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// CoffeeLot es el lote de café que un caficultor ofrece en el marketplace.
type CoffeeLot struct {
	ID             string
	FarmerID       string
	LotName        string
	CropYear       int
	Country        string
	Region         *string
	AltitudeMeters *int
	Grade          *string
	Certification  *string
	Process        *string
	Variety        *string
	HarvestMonth   *string
	ReadyLocation  *string
	TastingNotes   *string
	BagsAvailable  int
	BagSizeKg      decimal.Decimal
	CupScore       *decimal.Decimal
	PricePerKg     *decimal.Decimal
	Currency       string
	Status         string
	Visibility     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LotUpdate es el conjunto de cambios de un UPDATE parcial sobre CoffeeLot.
// Solo los campos no nil se escriben; las columnas salen de la allow-list
// fija del repositorio, nunca de las claves del request.
type LotUpdate struct {
	LotName        *string
	CropYear       *int
	Country        *string
	Region         *string
	AltitudeMeters *int
	Grade          *string
	Certification  *string
	Process        *string
	Variety        *string
	HarvestMonth   *string
	ReadyLocation  *string
	TastingNotes   *string
	BagsAvailable  *int
	BagSizeKg      *decimal.Decimal
	CupScore       *decimal.Decimal
	PricePerKg     *decimal.Decimal
	Currency       *string
	Visibility     *string
	Status         *string
}

// Empty indica que el payload no trae ningún campo reconocido: la operación
// debe reportar éxito sin emitir UPDATE.
func (u LotUpdate) Empty() bool {
	return u.LotName == nil && u.CropYear == nil && u.Country == nil &&
		u.Region == nil && u.AltitudeMeters == nil && u.Grade == nil &&
		u.Certification == nil && u.Process == nil && u.Variety == nil &&
		u.HarvestMonth == nil && u.ReadyLocation == nil && u.TastingNotes == nil &&
		u.BagsAvailable == nil && u.BagSizeKg == nil && u.CupScore == nil &&
		u.PricePerKg == nil && u.Currency == nil && u.Visibility == nil &&
		u.Status == nil
}

// MarketplaceLot es la fila pública del marketplace: lote publicado + datos
// del caficultor resueltos por join.
type MarketplaceLot struct {
	CoffeeLot
	FarmerCompany   *string
	FarmerFirstName *string
	FarmerLastName  *string
	FarmerCountry   *string
}
