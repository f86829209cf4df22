package dto

// CreateIndustryRequest entrada para crear un sector.
type CreateIndustryRequest struct {
	Code     string `json:"code" validate:"required,min=1,max=50"`
	Industry string `json:"industry" validate:"required,min=1,max=200"`
}

// AddCompanyRequest entrada para asociar una empresa a un sector.
type AddCompanyRequest struct {
	CompCode string `json:"comp_code" validate:"required"`
}

// IndustryBody sector en respuestas.
type IndustryBody struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryListResponse salida de GET /industries (solo nombres).
type IndustryListResponse struct {
	Industries []string `json:"industries"`
}

// IndustryResponse salida de POST /industries.
type IndustryResponse struct {
	Industry IndustryBody `json:"industry"`
}
