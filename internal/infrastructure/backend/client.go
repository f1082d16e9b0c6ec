// Package backend implementa los gateways contra el API REST de Inventario.
//
// Usa net/http de la stdlib con timeout configurable; cada petición lleva el
// Bearer token del cliente autenticado y hereda el contexto de la petición HTTP
// que la originó, de modo que una desconexión del consumidor cancela todas las
// llamadas upstream pendientes.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/pkg/config"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// Client cliente HTTP base compartido por todos los gateways.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente con la configuración del backend.
func NewClient(cfg config.BackendConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		log:        log.Component("backend"),
	}
}

// getJSON hace GET <baseURL><path> con Bearer token y decodifica JSON en out.
func (c *Client) getJSON(ctx context.Context, token, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("backend: construir petición %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.do(req, path, out)
}

// postJSON hace POST <baseURL><path> con cuerpo JSON y decodifica la respuesta en out.
func (c *Client) postJSON(ctx context.Context, token, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("backend: serializar cuerpo %s: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("backend: construir petición %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Cancelación del consumidor: se propaga como tal para que el
		// coordinador no la confunda con un fallo real del backend.
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return fmt.Errorf("backend: %s: %w", path, ctxErr)
		}
		c.log.Warn().Err(err).Str("path", path).Msg("fallo de red contra el backend")
		return fmt.Errorf("%w: %s: %v", domain.ErrBackendUnavailable, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, path)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s respondió %d", domain.ErrBackendUnavailable, path, resp.StatusCode)
	case resp.StatusCode >= 400:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s respondió %d: %s", domain.ErrBackendRejected, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decodificar respuesta de %s: %v", domain.ErrBackendRejected, path, err)
	}
	return nil
}
