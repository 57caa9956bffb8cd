// Package server implements the pktfmt serve command: diagram rendering
// over HTTP for editor integrations and scripts.
//
// # Endpoints
//
//	GET  /api/protocols   JSON index of known protocols
//	POST /api/render      Render one diagram
//	GET  /ws              WebSocket live preview
//
// The render endpoint accepts a JSON body naming either a protocol or an
// inline definition, plus optional layout options:
//
//	{"definition": "Type:16,Length:16,Payload:*", "bits_per_row": 32,
//	 "ruler": false, "style": "unicode"}
//
// and answers {"diagram": "..."} or {"error": "..."} with status 400 for
// invalid input.
//
// The live-preview socket speaks the same request/response JSON, one
// response per request, so an editor can re-render a definition on every
// keystroke over a single connection.
//
// The server holds no mutable state; rendering is pure, so all handlers are
// safe for concurrent requests.
package server
