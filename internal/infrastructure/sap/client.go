// Package sap implementa el cliente HTTP hacia el sistema logístico SAP:
// verificación de identificadores y alta de registros de correspondencia.
// Usa net/http de la stdlib; el gateway SAP expone un API REST JSON.
package sap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/Altas-api/internal/application/alta"
	"github.com/jhoicas/Altas-api/internal/domain"
	"github.com/jhoicas/Altas-api/internal/domain/entity"
	"github.com/jhoicas/Altas-api/internal/domain/wizard"
	"github.com/jhoicas/Altas-api/pkg/config"
	"github.com/jhoicas/Altas-api/pkg/logger"
)

var _ alta.LogisticsClient = (*Client)(nil)

// Client cliente del gateway logístico SAP. Cualquier fallo de red o 5xx se
// normaliza a domain.ErrTransient: el asistente lo presenta como reintentable.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente con la configuración SAP.
func NewClient(cfg config.SAPConfig, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type verifyResponse struct {
	SAPID  string `json:"sap_id"`
	Status string `json:"status"` // AVAILABLE | TAKEN
}

// Verify consulta la disponibilidad de un identificador SAP.
func (c *Client) Verify(ctx context.Context, sapID string) (wizard.SAPStatus, error) {
	url := fmt.Sprintf("%s/identifiers/%s", c.baseURL, sapID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return wizard.SAPUnverified, fmt.Errorf("sap: crear request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wizard.SAPUnverified, fmt.Errorf("sap: verificación de %s fallida (%v): %w", sapID, err, domain.ErrTransient)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return wizard.SAPUnverified, fmt.Errorf("sap: leer respuesta: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		var out verifyResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return wizard.SAPUnverified, fmt.Errorf("sap: respuesta inesperada: %w", err)
		}
		switch out.Status {
		case string(wizard.SAPAvailable):
			return wizard.SAPAvailable, nil
		case string(wizard.SAPTaken):
			return wizard.SAPTaken, nil
		default:
			return wizard.SAPUnverified, fmt.Errorf("sap: estado desconocido %q", out.Status)
		}
	case resp.StatusCode == http.StatusNotFound:
		// El gateway no conoce el identificador: no es asignable.
		return wizard.SAPUnverified, fmt.Errorf("sap: identificador %s inexistente: %w", sapID, domain.ErrNotFound)
	case resp.StatusCode >= 500:
		return wizard.SAPUnverified, fmt.Errorf("sap: HTTP %d (%s): %w", resp.StatusCode, truncate(body), domain.ErrTransient)
	default:
		return wizard.SAPUnverified, fmt.Errorf("sap: HTTP %d (%s): %w", resp.StatusCode, truncate(body), domain.ErrInvalidInput)
	}
}

type correspondenceRequest struct {
	SAPID        string `json:"sap_id"`
	Recipient    string `json:"recipient"`
	Street       string `json:"street"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	Province     string `json:"province"`
	ContactPhone string `json:"contact_phone"`
}

type correspondenceResponse struct {
	ID string `json:"id"`
}

// CreateCorrespondence crea el registro logístico de envío de la SIM física.
// Un 409 significa que el identificador se ocupó entre la verificación y el
// envío; se devuelve como domain.ErrConflict.
func (c *Client) CreateCorrespondence(ctx context.Context, in entity.CorrespondenceInput) (*entity.CorrespondenceRecord, error) {
	payload, err := json.Marshal(correspondenceRequest{
		SAPID:        in.SAPID,
		Recipient:    in.Recipient,
		Street:       in.Street,
		City:         in.City,
		PostalCode:   in.PostalCode,
		Province:     in.Province,
		ContactPhone: in.ContactPhone,
	})
	if err != nil {
		return nil, fmt.Errorf("sap: serializar correspondencia: %w", err)
	}

	url := c.baseURL + "/correspondences"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("sap: crear request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sap: alta de correspondencia fallida (%v): %w", err, domain.ErrTransient)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("sap: leer respuesta: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusOK:
		var out correspondenceResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("sap: respuesta inesperada: %w", err)
		}
		if out.ID == "" {
			return nil, fmt.Errorf("sap: correspondencia creada sin id")
		}
		c.log.Info().Str("correspondence_id", out.ID).Str("sap_id", in.SAPID).Msg("correspondencia SAP creada")
		return &entity.CorrespondenceRecord{
			ID:           out.ID,
			SAPID:        in.SAPID,
			Recipient:    in.Recipient,
			Street:       in.Street,
			City:         in.City,
			PostalCode:   in.PostalCode,
			Province:     in.Province,
			ContactPhone: in.ContactPhone,
		}, nil
	case resp.StatusCode == http.StatusConflict:
		return nil, fmt.Errorf("sap: identificador %s ya ocupado: %w", in.SAPID, domain.ErrConflict)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("sap: HTTP %d (%s): %w", resp.StatusCode, truncate(body), domain.ErrTransient)
	default:
		return nil, fmt.Errorf("sap: HTTP %d (%s): %w", resp.StatusCode, truncate(body), domain.ErrInvalidInput)
	}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
}

func truncate(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		return s[:200] + "…"
	}
	return s
}
