// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/campus-found/internal/config"
	"github.com/MKhiriev/campus-found/internal/handler"
	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandlers(t *testing.T, addr string) *handler.Handlers {
	t.Helper()
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: addr}}
	h, err := handler.NewHandlers(&service.Services{}, nil, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer(t *testing.T) {
	t.Run("http address", func(t *testing.T) {
		s, err := NewServer(testHandlers(t, "127.0.0.1:0"), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
		require.NoError(t, err)
		require.NotNil(t, s)

		impl := s.(*server)
		assert.Equal(t, readHeaderTimeout, impl.httpServer.server.ReadHeaderTimeout)
	})

	t.Run("no address", func(t *testing.T) {
		s, err := NewServer(testHandlers(t, "127.0.0.1:0"), config.Server{}, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
		assert.Nil(t, s)
	})

	t.Run("no handlers", func(t *testing.T) {
		_, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
	})
}

func TestServer_RunWithoutServers(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	s, err := NewServer(testHandlers(t, "127.0.0.1:0"), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestServer_RunListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	addr := busy.Addr().String()
	s, err := NewServer(testHandlers(t, addr), config.Server{HTTPAddress: addr}, logger.Nop())
	require.NoError(t, err)

	err = s.(*server).run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), addr)
}

func TestHTTPServer_ServesAndShutsDown(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "Campus FOUND System API")
	})

	hs := newHTTPServer(mux, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	ln, err := hs.listen()
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- hs.serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "Campus FOUND System API", string(body))

	hs.Shutdown()
	assert.NoError(t, <-done)
}
