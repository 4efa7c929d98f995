package dto

// SoldEntryResponse una venta del libro local.
type SoldEntryResponse struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Timestamp string `json:"timestamp"`
}

// SalesListResponse el libro de ventas completo, de la más antigua a la más
// reciente.
type SalesListResponse struct {
	Items []SoldEntryResponse `json:"items"`
	Total int                 `json:"total"`
}
