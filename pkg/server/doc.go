// Package server is the vmini playground: it serves one mounted instance
// over HTTP and keeps browsers in sync over a WebSocket.
//
// Routes:
//
//	GET  /                       page with the current tree and the client script
//	GET  /ws                     HTML frames, one on connect and one after each change
//	GET  /state                  JSON snapshot of the store's data
//	POST /set/{key}              write a JSON value to key
//	POST /dispatch/{id}/{event}  run the listeners of the element with that id
//	GET  /metrics                Prometheus metrics
//
// The instance is not safe for concurrent use, so every request that touches
// it holds the server's lock for the whole call, re-render included.
package server
