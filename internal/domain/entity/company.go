package entity

// Company representa una empresa registrada en el sistema.
// El código se deriva del nombre (slug) al crearla y es inmutable.
type Company struct {
	Code        string
	Name        string
	Description string
}
