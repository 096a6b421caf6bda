package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubCorrector map[string]string

func (s stubCorrector) CorrectName(ctx context.Context, name string) (string, error) {
	if fixed, ok := s[name]; ok {
		return fixed, nil
	}
	return name, nil
}

type failingCorrector struct{}

func (failingCorrector) CorrectName(ctx context.Context, name string) (string, error) {
	return "", errors.New("provider down")
}

func TestParseOrderPricesFromCatalog(t *testing.T) {
	r, _, _ := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/orders/parse", map[string]any{
		"text": "Chapathi, 3\nGhee Roti 2",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	items := body["items"].([]any)
	assert.Len(t, items, 2)

	first := items[0].(map[string]any)
	assert.Equal(t, "Chapathi", first["name"])
	assert.Equal(t, 15.0, first["price"])
	assert.Equal(t, 3.0, first["qty"])
	assert.Equal(t, 185.0, body["total"])
}

func TestParseOrderUnknownNamesReportedInvalid(t *testing.T) {
	r, _, _ := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/orders/parse", map[string]any{
		"text": "Chapathi\nUnicorn Steak 2",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["items"], 1)
	assert.Len(t, body["invalid"], 1)
	assert.Equal(t, 15.0, body["total"])
}

func TestParseOrderAppliesCorrection(t *testing.T) {
	r, _, _ := setupTest(t)
	corrector = stubCorrector{"Chapati": "Chapathi"}

	w := doJSON(t, r, http.MethodPost, "/orders/parse", map[string]any{
		"text": "Chapati, 2",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	items := body["items"].([]any)
	assert.Len(t, items, 1)
	assert.Equal(t, "Chapathi", items[0].(map[string]any)["name"])
	assert.Equal(t, 30.0, body["total"])
}

func TestParseOrderRequiresText(t *testing.T) {
	r, _, _ := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/orders/parse", map[string]any{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCorrectNameRequiresName(t *testing.T) {
	r, _, _ := setupTest(t)
	corrector = stubCorrector{}

	w := doJSON(t, r, http.MethodPost, "/ai/correct-name", map[string]any{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCorrectNameWithoutProvider(t *testing.T) {
	r, _, _ := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/ai/correct-name", map[string]any{"name": "chapati"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCorrectNameSuccess(t *testing.T) {
	r, _, _ := setupTest(t)
	corrector = stubCorrector{"chapati": "Chapathi"}

	w := doJSON(t, r, http.MethodPost, "/ai/correct-name", map[string]any{"name": "chapati"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Chapathi", decodeBody(t, w)["corrected"])
}

func TestCorrectNameProviderFailure(t *testing.T) {
	r, _, _ := setupTest(t)
	corrector = failingCorrector{}

	w := doJSON(t, r, http.MethodPost, "/ai/correct-name", map[string]any{"name": "chapati"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
