package store_test

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-panel/internal/application/store"
	"github.com/jhoicas/inventario-panel/internal/domain"
	"github.com/jhoicas/inventario-panel/internal/domain/entity"
	"github.com/jhoicas/inventario-panel/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del puerto ProductRemote
// ──────────────────────────────────────────────────────────────────────────────

// fakeProductRemote implementa repository.ProductRemote en memoria con
// errores programables y contadores de llamadas, para verificar que los
// fallos de validación nunca llegan a red.
type fakeProductRemote struct {
	mu sync.Mutex

	listResult []entity.Product
	listErr    error
	createErr  error
	updateErr  error
	deleteErr  error
	echo       func(entity.Product) *entity.Product

	nextID      int64
	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
	lastUpdate  entity.Product
}

func (f *fakeProductRemote) List(ctx context.Context) ([]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entity.Product, len(f.listResult))
	copy(out, f.listResult)
	return out, nil
}

func (f *fakeProductRemote) Create(ctx context.Context, product entity.Product) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeProductRemote) Update(ctx context.Context, product entity.Product) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.lastUpdate = product
	if f.echo != nil {
		return f.echo(product), nil
	}
	return nil, nil
}

func (f *fakeProductRemote) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	return f.deleteErr
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newStore(t *testing.T, remote *fakeProductRemote) (*store.ProductStore, *store.SalesLedger) {
	t.Helper()
	ledger := store.NewSalesLedger()
	s := store.NewProductStore(remote, ledger, logger.Nop())
	if remote.listResult != nil {
		require.NoError(t, s.Load(context.Background()), "la carga inicial debe funcionar")
	}
	return s, ledger
}

func product(id int64, name string, quantity int) entity.Product {
	return entity.Product{
		ProductID:   id,
		Name:        name,
		Description: "desc",
		Category:    "bebidas",
		Price:       decimal.NewFromInt(5),
		Quantity:    quantity,
	}
}

func draft(name, price, quantity string) entity.ProductDraft {
	return entity.ProductDraft{
		Name:        name,
		Description: "desc",
		Category:    "bebidas",
		Price:       price,
		Quantity:    quantity,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Cada alta exitosa agrega exactamente una entrada y el id asignado nunca se
// repite con uno previo.
func TestCreate_IncrementaListaConIDUnico(t *testing.T) {
	remote := &fakeProductRemote{listResult: []entity.Product{}}
	s, _ := newStore(t, remote)

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		before := len(s.All())
		out, err := s.Create(context.Background(), draft(fmt.Sprintf("Producto %d", i), "5", "3"))
		require.NoError(t, err)
		assert.Len(t, s.All(), before+1, "cada alta agrega exactamente una entrada")
		assert.False(t, seen[out.ProductID], "el id %d no debe repetirse", out.ProductID)
		seen[out.ProductID] = true
	}
}

func TestCreate_CoercionaCantidadYPrecio(t *testing.T) {
	remote := &fakeProductRemote{listResult: []entity.Product{}}
	s, _ := newStore(t, remote)

	out, err := s.Create(context.Background(), draft("Tea", "5", "10"))
	require.NoError(t, err)
	assert.Equal(t, 10, out.Quantity, "la cantidad debe coercionarse a entero")
	assert.True(t, out.Price.Equal(decimal.NewFromInt(5)), "el precio debe coercionarse a decimal")
}

// Un borrador inválido se rechaza antes de cualquier llamada a red.
func TestCreate_BorradorInvalidoNoLlamaARed(t *testing.T) {
	remote := &fakeProductRemote{listResult: []entity.Product{}}
	s, _ := newStore(t, remote)

	cases := []entity.ProductDraft{
		draft("Tea", "5", "diez"),  // cantidad no numérica
		draft("Tea", "5", "-1"),    // cantidad negativa
		draft("Tea", "gratis", "1"), // precio no numérico
		draft("Tea", "-5", "1"),    // precio negativo
		draft("", "5", "1"),        // sin nombre
	}
	for _, d := range cases {
		_, err := s.Create(context.Background(), d)
		assert.Error(t, err, "el borrador %+v debe rechazarse", d)
	}
	assert.Zero(t, remote.createCalls, "ningún borrador inválido debe llegar a red")
	assert.Empty(t, s.All(), "la lista debe quedar intacta")
}

func TestCreate_FalloRemotoDejaListaIntacta(t *testing.T) {
	remote := &fakeProductRemote{
		listResult: []entity.Product{product(1, "Milk", 4)},
		createErr:  domain.ErrRemote,
	}
	s, _ := newStore(t, remote)

	_, err := s.Create(context.Background(), draft("Tea", "5", "10"))
	assert.ErrorIs(t, err, domain.ErrRemote)
	assert.Len(t, s.All(), 1, "en fallo la lista conserva su valor previo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// Una actualización fallida (respuesta no-ok simulada) deja la lista local
// idéntica a su valor previo.
func TestUpdate_FallidoDejaListaIdentica(t *testing.T) {
	remote := &fakeProductRemote{
		listResult: []entity.Product{product(1, "Milk", 4), product(2, "Tea", 7)},
		updateErr:  domain.ErrRemoteStatus,
	}
	s, _ := newStore(t, remote)
	before := s.All()

	_, err := s.Update(context.Background(), 2, draft("Tea Premium", "9", "1"))
	assert.ErrorIs(t, err, domain.ErrRemoteStatus)
	assert.Equal(t, before, s.All(), "la lista debe quedar idéntica a su valor previo")
}

// Cuando el servidor hace eco de su representación, esa es la que queda en la
// lista (fuente única de verdad), conservando la identidad.
func TestUpdate_FusionaEcoDelServidor(t *testing.T) {
	remote := &fakeProductRemote{
		listResult: []entity.Product{product(1, "Milk", 4)},
		echo: func(p entity.Product) *entity.Product {
			normalized := p
			normalized.Name = "MILK" // el servidor normaliza el nombre
			return &normalized
		},
	}
	s, _ := newStore(t, remote)

	out, err := s.Update(context.Background(), 1, draft("milk", "5", "4"))
	require.NoError(t, err)
	assert.Equal(t, "MILK", out.Name, "debe prevalecer la representación del servidor")
	assert.Equal(t, int64(1), out.ProductID, "la identidad es inmutable")

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "MILK", got.Name)
}

// Sin eco utilizable vale la copia local coercionada.
func TestUpdate_SinEcoUsaCopiaLocal(t *testing.T) {
	remote := &fakeProductRemote{
		listResult: []entity.Product{product(1, "Milk", 4)},
	}
	s, _ := newStore(t, remote)

	out, err := s.Update(context.Background(), 1, draft("Milk Entera", "6", "9"))
	require.NoError(t, err)
	assert.Equal(t, "Milk Entera", out.Name)
	assert.Equal(t, 9, out.Quantity)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(6)))
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	remote := &fakeProductRemote{listResult: []entity.Product{}}
	s, _ := newStore(t, remote)

	_, err := s.Update(context.Background(), 99, draft("Tea", "5", "1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, remote.updateCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Remove
// ──────────────────────────────────────────────────────────────────────────────

// Un delete cuyo remoto respondió success=false conserva el producto y
// devuelve el fallo.
func TestRemove_RechazadoConservaProducto(t *testing.T) {
	remote := &fakeProductRemote{
		listResult: []entity.Product{product(1, "Milk", 4)},
		deleteErr:  fmt.Errorf("%w: referenciado por ventas", domain.ErrDeleteRejected),
	}
	s, _ := newStore(t, remote)

	err := s.Remove(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrDeleteRejected)
	assert.Len(t, s.All(), 1, "el producto debe seguir presente")
}

func TestRemove_ExitosoQuitaDeLaLista(t *testing.T) {
	remote := &fakeProductRemote{
		listResult: []entity.Product{product(1, "Milk", 4), product(2, "Tea", 7)},
	}
	s, _ := newStore(t, remote)

	require.NoError(t, s.Remove(context.Background(), 1))
	rest := s.All()
	require.Len(t, rest, 1)
	assert.Equal(t, int64(2), rest[0].ProductID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Buy / Sell
// ──────────────────────────────────────────────────────────────────────────────

func TestBuy_SumaCantidad(t *testing.T) {
	remote := &fakeProductRemote{listResult: []entity.Product{product(1, "Milk", 4)}}
	s, _ := newStore(t, remote)

	out, err := s.Buy(context.Background(), 1, "3")
	require.NoError(t, err)
	assert.Equal(t, 7, out.Quantity)
	assert.Equal(t, 7, remote.lastUpdate.Quantity, "el PUT viaja con el objeto completo actualizado")
	assert.Equal(t, "Milk", remote.lastUpdate.Name)
}

func TestBuy_CantidadInvalida(t *testing.T) {
	remote := &fakeProductRemote{listResult: []entity.Product{product(1, "Milk", 4)}}
	s, _ := newStore(t, remote)

	_, err := s.Buy(context.Background(), 1, "tres")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Zero(t, remote.updateCalls)
}

// La venta se rechaza sin llamada a red ni entrada en el libro cuando la
// cantidad es no numérica, no positiva o mayor al stock actual.
func TestSell_RechazaSinLlamadaARed(t *testing.T) {
	remote := &fakeProductRemote{listResult: []entity.Product{product(1, "Milk", 4)}}
	s, ledger := newStore(t, remote)

	for _, amount := range []string{"abc", "", "0", "-2", "5"} {
		_, err := s.Sell(context.Background(), 1, amount)
		assert.Error(t, err, "la venta de %q debe rechazarse", amount)
	}
	assert.Zero(t, remote.updateCalls, "ninguna venta rechazada debe llegar a red")
	assert.Zero(t, ledger.Len(), "ninguna venta rechazada debe entrar al libro")

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Quantity, "el stock debe quedar intacto")
}

func TestSell_StockInsuficiente(t *testing.T) {
	remote := &fakeProductRemote{listResult: []entity.Product{product(1, "Milk", 4)}}
	s, _ := newStore(t, remote)

	_, err := s.Sell(context.Background(), 1, "5")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Tras una venta exitosa el libro crece exactamente en uno y su última
// entrada copia el nombre del producto y la cantidad vendida.
func TestSell_RegistraVentaEnLibro(t *testing.T) {
	remote := &fakeProductRemote{listResult: []entity.Product{product(1, "Milk", 4)}}
	s, ledger := newStore(t, remote)

	out, err := s.Sell(context.Background(), 1, "3")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Quantity)

	entries := ledger.All()
	require.Len(t, entries, 1)
	last := entries[len(entries)-1]
	assert.Equal(t, "Milk", last.Name)
	assert.Equal(t, 3, last.Quantity)
	assert.NotEmpty(t, last.Timestamp)
}

// La entrada del libro se anexa antes de confirmar el ajuste remoto: un
// ajuste fallido deja el stock intacto pero la venta ya registrada, igual que
// en el flujo original.
func TestSell_AjusteFallidoConservaEntradaDelLibro(t *testing.T) {
	remote := &fakeProductRemote{
		listResult: []entity.Product{product(1, "Milk", 4)},
		updateErr:  domain.ErrRemote,
	}
	s, ledger := newStore(t, remote)

	_, err := s.Sell(context.Background(), 1, "2")
	assert.ErrorIs(t, err, domain.ErrRemote)

	got, getErr := s.Get(1)
	require.NoError(t, getErr)
	assert.Equal(t, 4, got.Quantity, "el stock local no se muta en fallo")
	assert.Equal(t, 1, ledger.Len(), "la venta queda registrada de todos modos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Vistas derivadas
// ──────────────────────────────────────────────────────────────────────────────

// El total siempre es la suma de las cantidades en tenencia, recalculada.
func TestTotalQuantity_Recalculado(t *testing.T) {
	remote := &fakeProductRemote{
		listResult: []entity.Product{product(1, "Milk", 5), product(2, "Tea", 3)},
	}
	s, _ := newStore(t, remote)

	assert.Equal(t, 8, s.TotalQuantity())

	_, err := s.Sell(context.Background(), 1, "2")
	require.NoError(t, err)
	assert.Equal(t, 6, s.TotalQuantity(), "el total refleja la venta sin cacheo")
}

// La vista de gestión solo lista productos con cantidad mayor a cero; el
// dashboard los lista todos.
func TestVisible_FiltraSinStock(t *testing.T) {
	remote := &fakeProductRemote{
		listResult: []entity.Product{product(1, "Milk", 5), product(2, "Tea", 0), product(3, "Cake", 2)},
	}
	s, _ := newStore(t, remote)

	visible := s.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "Milk", visible[0].Name)
	assert.Equal(t, "Cake", visible[1].Name)
	assert.Len(t, s.All(), 3, "el dashboard ve la lista completa")
}

func TestSearch_SubcadenaInsensibleAMayusculas(t *testing.T) {
	remote := &fakeProductRemote{
		listResult: []entity.Product{
			product(1, "Chocolate Cake", 5),
			product(2, "Milk", 3),
			product(3, "Hot Chocolate", 2),
		},
	}
	s, _ := newStore(t, remote)

	results := s.Search("choc")
	require.Len(t, results, 2)
	assert.Equal(t, "Chocolate Cake", results[0].Name, "el orden original se conserva")
	assert.Equal(t, "Hot Chocolate", results[1].Name)

	assert.Empty(t, s.Search("CAFÉ"), "sin coincidencias devuelve vacío")
	assert.Empty(t, s.Search(""), "la query vacía nunca coincide con todo")
}

var colorRe = regexp.MustCompile(`^#[0-9A-F]{6}$`)

// La serie de la gráfica conserva el orden de lista y trae un color #RRGGBB
// por producto. El color es cosmético: no se compara contra valor alguno.
func TestChartSeries_OrdenYColor(t *testing.T) {
	remote := &fakeProductRemote{
		listResult: []entity.Product{product(1, "Milk", 5), product(2, "Tea", 3)},
	}
	s, _ := newStore(t, remote)

	series := s.ChartSeries()
	require.Len(t, series, 2)
	assert.Equal(t, "Milk", series[0].Label)
	assert.Equal(t, 5, series[0].Value)
	assert.Equal(t, "Tea", series[1].Label)
	assert.Equal(t, 3, series[1].Value)
	for _, pt := range series {
		assert.Regexp(t, colorRe, pt.Color)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Load
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_FallidoConservaEstadoPrevio(t *testing.T) {
	remote := &fakeProductRemote{listResult: []entity.Product{product(1, "Milk", 5)}}
	s, _ := newStore(t, remote)

	remote.mu.Lock()
	remote.listErr = domain.ErrRemote
	remote.mu.Unlock()

	err := s.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrRemote)
	assert.Len(t, s.All(), 1, "el estado previo se conserva ante un load fallido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo
// ──────────────────────────────────────────────────────────────────────────────

// Crear {name:"Tea", quantity:"10", price:"5"} deja una entrada con cantidad
// entera 10 y precio 5; vender 4 la baja a 6 y el libro registra {Tea, 4}.
func TestFlujoCompleto_CrearYVender(t *testing.T) {
	remote := &fakeProductRemote{listResult: []entity.Product{}}
	s, ledger := newStore(t, remote)

	created, err := s.Create(context.Background(), draft("Tea", "5", "10"))
	require.NoError(t, err)

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, 10, all[0].Quantity)
	assert.True(t, all[0].Price.Equal(decimal.NewFromInt(5)))

	out, err := s.Sell(context.Background(), created.ProductID, "4")
	require.NoError(t, err)
	assert.Equal(t, 6, out.Quantity)

	entries := ledger.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Tea", entries[0].Name)
	assert.Equal(t, 4, entries[0].Quantity)
}
