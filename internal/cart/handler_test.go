package cart

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gennaskitchen/service-api-go/pkg/utilities"
)

func newTestHandler() (*Handler, *fakeProducts) {
	svc, _, _, products := newTestService()
	return NewHandler(svc, zap.NewNop().Sugar()), products
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utilities.Envelope {
	t.Helper()
	var env utilities.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func addLine(t *testing.T, h *Handler, userID, productID string, qty int) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(AddRequest{UserID: userID, ProductID: productID, Quantity: qty})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewReader(buf))
	rec := httptest.NewRecorder()
	h.Add(rec, req)
	return rec
}

func TestHandlerAdd(t *testing.T) {
	h, _ := newTestHandler()

	rec := addLine(t, h, "u1", "p1", 2)
	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)
	require.Equal(t, "Product added to cart successfully", env.Message)
	require.Equal(t, 3.00, env.Data.(map[string]any)["amount"])

	rec = addLine(t, h, "ghost", "p1", 1)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "User does not exist", decodeEnvelope(t, rec).Message)

	rec = addLine(t, h, "u1", "ghost", 1)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Product does not exist", decodeEnvelope(t, rec).Message)

	rec = addLine(t, h, "u1", "p1", -1)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerList_EmptyCart(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/cart/u1", nil)
	req.SetPathValue("userId", "u1")
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.True(t, env.Success, "empty cart is not an error")
	require.Equal(t, "Your cart is empty", env.Message)
	require.Equal(t, []any{}, env.Data)
}

func TestHandlerUpdate(t *testing.T) {
	h, products := newTestHandler()

	require.Equal(t, http.StatusCreated, addLine(t, h, "u1", "p1", 1).Code)
	products.prices["p1"] = 2.00

	buf, err := json.Marshal(UpdateRequest{Quantity: 3})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPatch, "/cart/u1/p1", bytes.NewReader(buf))
	req.SetPathValue("userId", "u1")
	req.SetPathValue("productId", "p1")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.Equal(t, "Cart updated successfully", env.Message)
	require.Equal(t, 6.00, env.Data.(map[string]any)["amount"])
}

func TestHandlerRemove(t *testing.T) {
	h, _ := newTestHandler()

	require.Equal(t, http.StatusCreated, addLine(t, h, "u1", "p1", 1).Code)

	req := httptest.NewRequest(http.MethodDelete, "/cart/u1/p1", nil)
	req.SetPathValue("userId", "u1")
	req.SetPathValue("productId", "p1")
	rec := httptest.NewRecorder()
	h.Remove(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Product removed from cart successfully", decodeEnvelope(t, rec).Message)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/cart/u1/p1", nil)
	req.SetPathValue("userId", "u1")
	req.SetPathValue("productId", "p1")
	h.Remove(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Cart line does not exist", decodeEnvelope(t, rec).Message)
}
