package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 0)
}

func TestGetJSONDecodesSuccess(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":5,"code":"PENDING"}`))
	})

	var out struct {
		ID   int64  `json:"id"`
		Code string `json:"code"`
	}
	if err := c.GetJSON(context.Background(), "/order-statuses/by-code/PENDING", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != 5 || out.Code != "PENDING" {
		t.Fatalf("unexpected decode: %+v", out)
	}
}

func TestGetJSONEmptyBody(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	err := c.GetJSON(context.Background(), "/payment-methods", &struct{}{})
	var empty *EmptyBodyError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyBodyError, got %v", err)
	}
	if empty.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 in error, got %d", empty.StatusCode)
	}
}

func TestGetJSONStatusErrorCarriesMessage(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"unknown order status"}`))
	})

	err := c.GetJSON(context.Background(), "/order-statuses/by-code/NOPE", &struct{}{})
	var status *StatusError
	if !errors.As(err, &status) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if status.StatusCode != http.StatusNotFound || status.Msg != "unknown order status" {
		t.Fatalf("unexpected status error: %+v", status)
	}
}

func TestMessageFallsBackToStatus(t *testing.T) {
	r := &Response{StatusCode: http.StatusBadGateway, Body: []byte(`<html>nope</html>`)}
	if got := r.Message(); got != "Error 502" {
		t.Fatalf("expected fallback message, got %q", got)
	}
}

func TestEmptyTreatsWhitespaceAsEmpty(t *testing.T) {
	r := &Response{StatusCode: http.StatusOK, Body: []byte(" \n\t ")}
	if !r.Empty() {
		t.Fatalf("whitespace-only body should count as empty")
	}
}

func TestDoReturnsErrorOnTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, 0)
	if _, err := c.Do(context.Background(), http.MethodGet, "/payment-methods", nil, nil); err == nil {
		t.Fatalf("expected a transport error")
	}
}
