package dto

// MarketplaceLotResponse fila pública del marketplace: lote + identidad del
// caficultor resuelta por join.
type MarketplaceLotResponse struct {
	LotResponse
	FarmerCompany   *string `json:"farmer_company"`
	FarmerFirstName *string `json:"farmer_first_name"`
	FarmerLastName  *string `json:"farmer_last_name"`
	FarmerCountry   *string `json:"farmer_country"`
}

// MarketplaceListEnvelope envoltura {lots: [...]} del listado público.
type MarketplaceListEnvelope struct {
	Lots []MarketplaceLotResponse `json:"lots"`
}
