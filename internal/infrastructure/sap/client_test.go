package sap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Altas-api/internal/domain"
	"github.com/jhoicas/Altas-api/internal/domain/entity"
	"github.com/jhoicas/Altas-api/internal/domain/wizard"
	"github.com/jhoicas/Altas-api/internal/infrastructure/sap"
	"github.com/jhoicas/Altas-api/pkg/config"
	"github.com/jhoicas/Altas-api/pkg/logger"
)

func newClient(t *testing.T, handler http.Handler) *sap.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return sap.NewClient(config.SAPConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}, logger.Nop())
}

func TestVerify_Disponible(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/identifiers/SAP1", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sap_id":"SAP1","status":"AVAILABLE"}`))
	}))

	status, err := client.Verify(context.Background(), "SAP1")
	require.NoError(t, err)
	assert.Equal(t, wizard.SAPAvailable, status)
}

func TestVerify_Ocupado(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sap_id":"SAP2","status":"TAKEN"}`))
	}))

	status, err := client.Verify(context.Background(), "SAP2")
	require.NoError(t, err)
	assert.Equal(t, wizard.SAPTaken, status)
}

func TestVerify_ErrorDeServidorEsTransitorio(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))

	_, err := client.Verify(context.Background(), "SAP1")
	assert.ErrorIs(t, err, domain.ErrTransient)
}

func TestCreateCorrespondence_Creada(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/correspondences", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"CORR-42"}`))
	}))

	record, err := client.CreateCorrespondence(context.Background(), entity.CorrespondenceInput{
		SAPID:     "SAP1",
		Recipient: "JOSE GARCIA",
		Street:    "Gran Vía 1",
	})
	require.NoError(t, err)
	assert.Equal(t, "CORR-42", record.ID)
	assert.Equal(t, "SAP1", record.SAPID)
}

func TestCreateCorrespondence_ConflictoPorCarrera(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "taken", http.StatusConflict)
	}))

	_, err := client.CreateCorrespondence(context.Background(), entity.CorrespondenceInput{SAPID: "SAP1"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateCorrespondence_CaidaDeRedEsTransitoria(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // servidor ya caído

	client := sap.NewClient(config.SAPConfig{BaseURL: srv.URL, Timeout: time.Second}, logger.Nop())
	_, err := client.CreateCorrespondence(context.Background(), entity.CorrespondenceInput{SAPID: "SAP1"})
	assert.ErrorIs(t, err, domain.ErrTransient)
}
