// Package server runs the HTTP API and the gRPC health endpoint and stops
// both gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
