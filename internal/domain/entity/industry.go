package entity

// Industry representa un sector económico. Se relaciona N:M con Company
// a través de la tabla company_industries.
type Industry struct {
	Code     string
	Industry string // nombre para mostrar
}
