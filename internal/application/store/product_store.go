package store

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/inventario-panel/internal/domain"
	"github.com/jhoicas/inventario-panel/internal/domain/entity"
	"github.com/jhoicas/inventario-panel/internal/domain/repository"
	"github.com/jhoicas/inventario-panel/pkg/logger"
)

// ChartPoint par (etiqueta, cantidad) de la gráfica de stock. Color es un
// #RRGGBB aleatorio, puramente cosmético: no hace parte del contrato.
type ChartPoint struct {
	Label string
	Value int
	Color string
}

// ProductStore espeja la lista de productos del servicio remoto y aplica la
// mutación local equivalente solo tras una llamada exitosa (fusión optimista,
// sin refetch). Ante cualquier fallo la lista queda intacta.
//
// El modelo original era de un solo hilo de eventos; aquí la superficie HTTP
// atiende en concurrencia, así que el estado va protegido por mutex.
type ProductStore struct {
	mu       sync.RWMutex
	remote   repository.ProductRemote
	ledger   *SalesLedger
	log      *logger.Logger
	products []entity.Product
}

// NewProductStore construye el store vacío; Load lo puebla.
func NewProductStore(remote repository.ProductRemote, ledger *SalesLedger, log *logger.Logger) *ProductStore {
	return &ProductStore{remote: remote, ledger: ledger, log: log}
}

// Load reemplaza la lista completa con la respuesta del servicio remoto.
// En fallo conserva el estado previo y devuelve el error (el llamador decide
// si lo registra o lo muestra; nunca es fatal).
func (s *ProductStore) Load(ctx context.Context) error {
	products, err := s.remote.List(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("cargar productos del servicio remoto")
		return err
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	s.log.Info().Int("count", len(products)).Msg("lista de productos sincronizada")
	return nil
}

// All devuelve todos los productos en orden de lista (vista del dashboard,
// sin importar la cantidad).
func (s *ProductStore) All() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Visible devuelve los productos con cantidad mayor a cero (vista de gestión).
func (s *ProductStore) Visible() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Quantity > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Get devuelve el producto con el id dado, o ErrNotFound.
func (s *ProductStore) Get(id int64) (entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ProductID == id {
			return p, nil
		}
	}
	return entity.Product{}, domain.ErrNotFound
}

// Create envía el borrador al servicio remoto y, en éxito, anexa el producto
// con el product_id devuelto. El borrador se coerciona antes de salir a red:
// cantidad a entero no negativo, precio a decimal no negativo.
func (s *ProductStore) Create(ctx context.Context, draft entity.ProductDraft) (*entity.Product, error) {
	product, err := coerceDraft(draft)
	if err != nil {
		return nil, err
	}

	id, err := s.remote.Create(ctx, product)
	if err != nil {
		s.log.Warn().Err(err).Str("name", product.Name).Msg("alta de producto")
		return nil, err
	}
	product.ProductID = id

	s.mu.Lock()
	s.products = append(s.products, product)
	s.mu.Unlock()
	return &product, nil
}

// Update envía el juego completo de campos del borrador y, en éxito, reemplaza
// la entrada local por identidad. Si el servidor hace eco de su representación
// se fusiona esa (fuente única de verdad); si no, vale la copia local coercionada.
func (s *ProductStore) Update(ctx context.Context, id int64, draft entity.ProductDraft) (*entity.Product, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	product, err := coerceDraft(draft)
	if err != nil {
		return nil, err
	}
	product.ProductID = id

	echo, err := s.remote.Update(ctx, product)
	if err != nil {
		s.log.Warn().Err(err).Int64("product_id", id).Msg("actualización de producto")
		return nil, err
	}
	merged := product
	if echo != nil {
		merged = *echo
		merged.ProductID = id // la identidad es inmutable
	}

	s.replace(merged)
	return &merged, nil
}

// Remove elimina el producto localmente solo si el servicio remoto confirmó
// con success=true; cualquier otra cosa deja la lista sin cambios.
func (s *ProductStore) Remove(ctx context.Context, id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.remote.Delete(ctx, id); err != nil {
		s.log.Warn().Err(err).Int64("product_id", id).Msg("baja de producto")
		return err
	}

	s.mu.Lock()
	for i, p := range s.products {
		if p.ProductID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// AdjustQuantity fija la cantidad del producto enviando el objeto completo
// (PUT); en éxito reemplaza la entrada local. Lo usan Buy y Sell.
func (s *ProductStore) AdjustQuantity(ctx context.Context, id int64, newQuantity int) (*entity.Product, error) {
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	updated := current
	updated.Quantity = newQuantity

	echo, err := s.remote.Update(ctx, updated)
	if err != nil {
		s.log.Warn().Err(err).Int64("product_id", id).Msg("ajuste de cantidad")
		return nil, err
	}
	merged := updated
	if echo != nil {
		merged = *echo
		merged.ProductID = id
	}

	s.replace(merged)
	return &merged, nil
}

// Buy suma amount (texto de prompt, entero no negativo) a la cantidad actual.
func (s *ProductStore) Buy(ctx context.Context, id int64, amount string) (*entity.Product, error) {
	qty, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return s.AdjustQuantity(ctx, id, current.Quantity+qty)
}

// Sell valida antes de cualquier llamada a red: amount debe ser un entero
// positivo y no exceder el stock actual. En aceptación registra la venta en el
// libro ANTES de confirmar el ajuste remoto (la entrada sobrevive a un ajuste
// fallido, igual que en el flujo original).
func (s *ProductStore) Sell(ctx context.Context, id int64, amount string) (*entity.Product, error) {
	qty, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}
	if qty <= 0 {
		return nil, fmt.Errorf("%w: la venta exige una cantidad positiva", domain.ErrInvalidQuantity)
	}
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if qty > current.Quantity {
		return nil, fmt.Errorf("%w: stock %d, pedido %d", domain.ErrInsufficientStock, current.Quantity, qty)
	}

	s.ledger.Record(current.Name, qty)
	return s.AdjustQuantity(ctx, id, current.Quantity-qty)
}

// TotalQuantity suma las cantidades de todos los productos en tenencia.
// Se recalcula en cada llamada; nunca se cachea.
func (s *ProductStore) TotalQuantity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, p := range s.products {
		total += p.Quantity
	}
	return total
}

// ChartSeries produce un punto (nombre, cantidad) por producto, en orden de
// lista, cada uno con un color de presentación aleatorio e independiente.
func (s *ProductStore) ChartSeries() []ChartPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ChartPoint, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, ChartPoint{
			Label: p.Name,
			Value: p.Quantity,
			Color: randomColor(),
		})
	}
	return out
}

// Search devuelve los productos cuyo nombre contiene query (insensible a
// mayúsculas, case folding Unicode), en el orden original de la lista. Una
// query vacía no coincide con nada: el llamador decide qué presentar.
func (s *ProductStore) Search(query string) []entity.Product {
	fold := cases.Fold()
	q := fold.String(query)
	if q == "" {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, 0)
	for _, p := range s.products {
		if strings.Contains(fold.String(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// replace sustituye por identidad la entrada correspondiente.
func (s *ProductStore) replace(product entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ProductID == product.ProductID {
			s.products[i] = product
			return
		}
	}
}

// coerceDraft convierte el borrador de formulario en un producto: cantidad a
// entero no negativo, precio a decimal no negativo.
func coerceDraft(draft entity.ProductDraft) (entity.Product, error) {
	if draft.Name == "" {
		return entity.Product{}, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(draft.Quantity))
	if err != nil || quantity < 0 {
		return entity.Product{}, fmt.Errorf("%w: quantity %q", domain.ErrInvalidQuantity, draft.Quantity)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(draft.Price))
	if err != nil || price.IsNegative() {
		return entity.Product{}, fmt.Errorf("%w: price %q", domain.ErrInvalidInput, draft.Price)
	}
	return entity.Product{
		Name:        draft.Name,
		Description: draft.Description,
		Category:    draft.Category,
		Price:       price,
		Quantity:    quantity,
	}, nil
}

// parseAmount interpreta la entrada de un prompt de comprar/vender como
// entero no negativo.
func parseAmount(amount string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(amount))
	if err != nil || qty < 0 {
		return 0, fmt.Errorf("%w: %q no es una cantidad válida", domain.ErrInvalidQuantity, amount)
	}
	return qty, nil
}

const colorDigits = "0123456789ABCDEF"

// randomColor genera un color #RRGGBB aleatorio, no determinista.
func randomColor() string {
	var b strings.Builder
	b.WriteByte('#')
	for i := 0; i < 6; i++ {
		b.WriteByte(colorDigits[rand.Intn(len(colorDigits))])
	}
	return b.String()
}
