package dto

// CreateCompanyRequest entrada para crear una empresa. El código se deriva del nombre.
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (reemplazo completo).
type UpdateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// CompanyItem empresa resumida en listados.
type CompanyItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyBody empresa completa en respuestas.
type CompanyBody struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyDetail empresa con sus facturas y sectores asociados.
type CompanyDetail struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Invoices    []int    `json:"invoices"`
	Industries  []string `json:"industries"`
}

// CompanyListResponse salida de GET /companies.
type CompanyListResponse struct {
	Companies []CompanyItem `json:"companies"`
}

// CompanyResponse salida de POST/PUT /companies.
type CompanyResponse struct {
	Company CompanyBody `json:"company"`
}

// CompanyDetailResponse salida de GET /companies/:code.
type CompanyDetailResponse struct {
	Company CompanyDetail `json:"company"`
}
