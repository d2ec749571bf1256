// Package client implements the interactive console application runtime.
//
// It wires the HTTP gateway, the session store, the reference caches, and
// the resource controllers into the terminal UI lifecycle: restore or log
// in, run the main loop, and start over on logout.
package client
