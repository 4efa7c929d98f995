package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El libro anexa en orden de inserción y sella cada entrada con el reloj de
// pared del momento del registro.
func TestSalesLedger_OrdenYSello(t *testing.T) {
	fixed := time.Date(2024, 11, 29, 14, 30, 5, 0, time.UTC)
	l := NewSalesLedger()
	l.now = func() time.Time { return fixed }

	l.Record("Tea", 4)
	l.Record("Milk", 1)

	entries := l.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Tea", entries[0].Name, "la más antigua va primero")
	assert.Equal(t, 4, entries[0].Quantity)
	assert.Equal(t, "Milk", entries[1].Name)
	assert.Equal(t, "29/11/2024 14:30:05", entries[0].Timestamp,
		"el sello se formatea al momento del registro")
}

// All devuelve una copia: mutar el resultado no toca el libro.
func TestSalesLedger_AllDevuelveCopia(t *testing.T) {
	l := NewSalesLedger()
	l.Record("Tea", 4)

	entries := l.All()
	entries[0].Name = "mutado"

	assert.Equal(t, "Tea", l.All()[0].Name)
	assert.Equal(t, 1, l.Len())
}
