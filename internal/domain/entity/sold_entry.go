package entity

// SoldEntry es un registro de venta del libro local de ventas.
// Es un valor puro: nunca se muta ni se elimina, y vive solo lo que dura la
// sesión (no se persiste en el servicio remoto). Name es una copia del nombre
// del producto al momento de la venta; no hay llave foránea.
type SoldEntry struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Timestamp string `json:"timestamp"`
}
