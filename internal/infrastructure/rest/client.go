package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-panel/internal/domain"
	"github.com/jhoicas/inventario-panel/internal/domain/repository"
	"github.com/jhoicas/inventario-panel/pkg/logger"
	"github.com/jhoicas/inventario-panel/pkg/metrics"
)

// Verificar en tiempo de compilación que Client implementa ambos puertos.
var (
	_ repository.ProductRemote = (*Client)(nil)
	_ repository.UserRemote    = (*Client)(nil)
)

// Client adaptador HTTP+JSON del servicio remoto de inventario
// (base por defecto http://localhost:5000).
// Usa net/http de la librería estándar de Go; no requiere SDK alguno.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. timeout es el límite de red por llamada;
// además cada petición viaja con el context del llamador, de modo que una
// vista desmontada cancela sus llamadas en vuelo.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// statusResponse cuerpo de respuesta de las eliminaciones: {success, message}.
type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// do ejecuta una llamada al servicio remoto y devuelve el cuerpo de la
// respuesta. Cualquier fallo se clasifica según la taxonomía del dominio:
// ErrRemote (transporte), ErrRemoteStatus (HTTP no 2xx). La lectura del
// cuerpo cuenta como transporte. op etiqueta métricas y logs.
func (c *Client) do(ctx context.Context, op, method, path string, payload any) ([]byte, error) {
	started := time.Now()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("serializar request %s: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("construir request %s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveRemote(op, metrics.OutcomeError, started)
		c.log.Warn().Err(err).
			Str("operation", op).
			Str("request_id", requestID).
			Msg("transporte hacia el servicio remoto")
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrRemote, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveRemote(op, metrics.OutcomeError, started)
		return nil, fmt.Errorf("%w: leer cuerpo de %s %s: %v", domain.ErrRemote, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ObserveRemote(op, metrics.OutcomeError, started)
		c.log.Warn().
			Str("operation", op).
			Str("request_id", requestID).
			Int("status", resp.StatusCode).
			Msg("estado no exitoso del servicio remoto")
		return nil, fmt.Errorf("%w: %s %s -> %d", domain.ErrRemoteStatus, method, path, resp.StatusCode)
	}

	metrics.ObserveRemote(op, metrics.OutcomeOK, started)
	c.log.Debug().
		Str("operation", op).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("llamada remota completada")
	return raw, nil
}
