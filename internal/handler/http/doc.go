// Package http implements the REST transport of the trustme server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as bearer authentication, request tracing, access logging and
// response compression are handled here before requests are delegated to the
// service layer. Every error reply has the body {"error": "<message>"}.
package http
