package dto

// APIError detalle de un error HTTP.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse cuerpo de error HTTP: {"error": {"message": ..., "status": ...}}.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// StatusResponse respuesta para operaciones de borrado.
type StatusResponse struct {
	Status string `json:"status"`
}
