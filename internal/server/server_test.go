package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func newTestServer() *Server {
	index := []ProtocolInfo{
		{Name: "udp", Description: "User Datagram Protocol"},
	}
	resolve := func(name string) (string, error) {
		if name == "udp" {
			return "Source Port:16,Destination Port:16,Length:16,Checksum:16,Data:*", nil
		}
		return "", fmt.Errorf("unknown protocol: %q", name)
	}
	return New("127.0.0.1:0", index, resolve)
}

func postRender(t *testing.T, srv *Server, req RenderRequest) (*httptest.ResponseRecorder, RenderResponse) {
	t.Helper()

	body, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/api/render", bytes.NewReader(body))
	srv.routes().ServeHTTP(rec, httpReq)

	var resp RenderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return rec, resp
}

func TestHandleRender_Definition(t *testing.T) {
	noRuler := false
	rec, resp := postRender(t, newTestServer(), RenderRequest{
		Definition: "Type:16,Length:16,Payload:*",
		Ruler:      &noRuler,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if !strings.Contains(resp.Diagram, "Type") || !strings.Contains(resp.Diagram, ":") {
		t.Errorf("diagram missing expected content:\n%s", resp.Diagram)
	}
	// Top border, two content rows, two separators between/below.
	if lines := strings.Count(resp.Diagram, "\n") + 1; lines != 5 {
		t.Errorf("diagram has %d lines, want 5", lines)
	}
}

func TestHandleRender_Protocol(t *testing.T) {
	rec, resp := postRender(t, newTestServer(), RenderRequest{Protocol: "udp"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(resp.Diagram, "Source Port") {
		t.Errorf("diagram missing protocol fields:\n%s", resp.Diagram)
	}
}

func TestHandleRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		req  RenderRequest
	}{
		{"no input", RenderRequest{}},
		{"both inputs", RenderRequest{Protocol: "udp", Definition: "A:8"}},
		{"unknown protocol", RenderRequest{Protocol: "nope"}},
		{"bad definition", RenderRequest{Definition: "Type:zero"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := postRender(t, newTestServer(), tt.req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if resp.Error == "" {
				t.Error("response should carry an error message")
			}
		})
	}
}

func TestHandleRender_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/render", nil)
	newTestServer().routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHandleProtocols(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/protocols", nil)
	newTestServer().routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var index []ProtocolInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &index); err != nil {
		t.Fatalf("index is not JSON: %v", err)
	}
	if len(index) != 1 || index[0].Name != "udp" {
		t.Errorf("index = %+v, want single udp entry", index)
	}
}

func TestWebSocketLivePreview(t *testing.T) {
	ts := httptest.NewServer(newTestServer().routes())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// A valid request gets a diagram back.
	if err := conn.WriteJSON(RenderRequest{Definition: "A:8,B:8"}); err != nil {
		t.Fatal(err)
	}
	var resp RenderResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error != "" || resp.Diagram == "" {
		t.Errorf("response = %+v, want diagram", resp)
	}

	// A broken definition keeps the connection open and reports the error.
	if err := conn.WriteJSON(RenderRequest{Definition: "broken"}); err != nil {
		t.Fatal(err)
	}
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error == "" {
		t.Error("invalid definition should produce an error response")
	}
}
