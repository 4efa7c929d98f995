package store

import (
	"sync"
	"time"

	"github.com/jhoicas/inventario-panel/internal/domain/entity"
)

// soldTimestampLayout formato del sello de tiempo de una venta; se fija al
// momento de registrar la entrada, no al consultarla.
const soldTimestampLayout = "02/01/2006 15:04:05"

// SalesLedger libro de ventas de la sesión: secuencia solo-anexar de
// SoldEntry, en orden de inserción. No hay poda, tope ni persistencia; el
// contenido se pierde al reiniciar el panel.
type SalesLedger struct {
	mu      sync.Mutex
	entries []entity.SoldEntry
	now     func() time.Time
}

// NewSalesLedger construye un libro vacío.
func NewSalesLedger() *SalesLedger {
	return &SalesLedger{now: time.Now}
}

// Record anexa una venta con el sello de tiempo del reloj de pared capturado
// en este instante.
func (l *SalesLedger) Record(name string, quantity int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entity.SoldEntry{
		Name:      name,
		Quantity:  quantity,
		Timestamp: l.now().Format(soldTimestampLayout),
	})
}

// All devuelve la secuencia completa, de la venta más antigua a la más
// reciente.
func (l *SalesLedger) All() []entity.SoldEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]entity.SoldEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len devuelve la cantidad de ventas registradas.
func (l *SalesLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
