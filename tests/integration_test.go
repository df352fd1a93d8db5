package tests

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"nabaztag/internal/application"
	"nabaztag/internal/choreography"
	"nabaztag/internal/domain"
	"nabaztag/internal/infra/violet"
)

func newRabbit(t *testing.T, serverURL string) *application.Rabbit {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return application.NewRabbit(
		domain.Identity{Serial: "0013D3000000", Token: "123456789", Voice: "claire22k"},
		violet.NewClient(serverURL),
		violet.NewCodec(),
		logger,
	)
}

func TestEndToEnd_BatchedCommandsSingleRequest(t *testing.T) {
	var requests []url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.Query())
		// French reply, padded the way the service pads fields, in the
		// service charset.
		w.Write([]byte("ok      Votre texte a \xe9t\xe9 transmis      " +
			"Votre commande a \xe9t\xe9 envoy\xe9e      " +
			"Votre chor\xe9graphie a \xe9t\xe9 envoy\xe9e"))
	}))
	defer server.Close()

	rabbit := newRabbit(t, server.URL)

	left, right := 0, 16
	rabbit.Say("café crème")
	rabbit.MoveEars(&left, &right)
	err := rabbit.Choreography("salut", func(c *choreography.Compiler) error {
		return c.Group(func(c *choreography.Compiler) error {
			if err := c.SetLed("top", "green"); err != nil {
				return err
			}
			return c.MoveEar(choreography.EarBoth, 90)
		})
	})
	if err != nil {
		t.Fatalf("Choreography error: %v", err)
	}

	if err := rabbit.Send(context.Background()); err != nil {
		t.Fatalf("Send error: %v", err)
	}

	if len(requests) != 1 {
		t.Fatalf("requests: got %d, want exactly 1 for the whole batch", len(requests))
	}

	query := requests[0]
	if got := query.Get("sn"); got != "0013D3000000" {
		t.Errorf("sn: got %q", got)
	}
	if got := query.Get("voice"); got != "claire22k" {
		t.Errorf("voice: got %q", got)
	}
	// The speech text crossed the wire in the service charset.
	if got := query.Get("tts"); got != "caf\xe9 cr\xe8me" {
		t.Errorf("tts: got %q, want %q", got, "caf\xe9 cr\xe8me")
	}
	if got := query.Get("posleft"); got != "0" {
		t.Errorf("posleft: got %q", got)
	}
	if got := query.Get("posright"); got != "16" {
		t.Errorf("posright: got %q", got)
	}
	if got := query.Get("chor"); got != "10,0,1,4,0,255,0,0,0,0,90,0,0,0,0,1,90,0,0" {
		t.Errorf("chor: got %q", got)
	}
	if got := query.Get("chortitle"); got != "salut" {
		t.Errorf("chortitle: got %q", got)
	}

	// Success swapped in a fresh batch: a second send has nothing to verify
	// and only identity parameters.
	if commands := rabbit.Pending().Commands(); len(commands) != 0 {
		t.Errorf("pending commands after success: got %v", commands)
	}
}

func TestEndToEnd_ServiceRejectionNamesCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ERROR"))
	}))
	defer server.Close()

	rabbit := newRabbit(t, server.URL)
	rabbit.Say("hello")

	err := rabbit.Send(context.Background())

	var svcErr *domain.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %T: %v", err, err)
	}
	if svcErr.Command != "Speech" {
		t.Errorf("failing command: got %q, want %q", svcErr.Command, "Speech")
	}
}

func TestEndToEnd_EarPositionsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("ears") != "ok" {
			http.Error(w, "missing ears parameter", http.StatusBadRequest)
			return
		}
		w.Write([]byte("Left position = 7      Right position = -2"))
	}))
	defer server.Close()

	rabbit := newRabbit(t, server.URL)

	positions, err := rabbit.EarPositions(context.Background())
	if err != nil {
		t.Fatalf("EarPositions error: %v", err)
	}
	if positions == nil {
		t.Fatal("positions: got nil, want a result")
	}
	if positions.Left != 7 || positions.Right != -2 {
		t.Errorf("positions: got (%d, %d), want (7, -2)", positions.Left, positions.Right)
	}
}

func TestEndToEnd_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	rabbit := newRabbit(t, server.URL)
	rabbit.Say("hello")

	err := rabbit.Send(context.Background())

	var transportErr *domain.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}

	// The batch survives for a caller-driven retry.
	if commands := rabbit.Pending().Commands(); len(commands) != 1 {
		t.Errorf("pending commands after transport failure: got %v", commands)
	}
}
