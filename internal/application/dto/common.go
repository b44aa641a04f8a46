package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ExistsResponse respuesta de los chequeos de unicidad.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// DashboardResponse resumen de conteos para el panel principal.
type DashboardResponse struct {
	Products    int `json:"products"`
	Users       int `json:"users"`
	Roles       int `json:"roles"`
	Permissions int `json:"permissions"`
}
