// Package preview serves a running editor session over HTTP and WebSocket.
//
// A single loop goroutine owns the session. WebSocket readers only decode
// input events and queue them for the loop; every rendered frame is fanned
// out to the connected clients through per-client buffered channels. A
// client that cannot keep up is dropped.
//
// # Endpoints
//
//	GET  /ws       WebSocket: frames out, events in
//	GET  /frame    the latest frame as JSON
//	POST /event    queue one event, e.g. curl -d event=enter
//	GET  /healthz  liveness
//
// # Messages
//
// All WebSocket messages are JSON text frames:
//
//	{"type":"event","event":"rotary-right"}   client to server
//	{"type":"frame","frame":{...}}            server to client
//	{"type":"error","error":"..."}            server to client
//
// Event names are those accepted by event.Parse.
//
// # Advertisement
//
// With Config.Advertise the server registers itself as an mDNS service of
// type ServiceType so `mainviews discover` can find it on the LAN.
package preview
