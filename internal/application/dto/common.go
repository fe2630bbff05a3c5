package dto

// PageResponse metadatos de página en respuestas de listados.
type PageResponse struct {
	Page       int  `json:"page"`
	TotalPages int  `json:"total_pages"`
	Total      int  `json:"total"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewPageResponse calcula los metadatos a partir de página actual, tamaño y total de filas.
func NewPageResponse(page, pageSize, total int) PageResponse {
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	return PageResponse{
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// ErrorResponse cuerpo de error HTTP: { "error": "..." }.
type ErrorResponse struct {
	Error string `json:"error"`
}
