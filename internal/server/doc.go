// Package server runs the portal's HTTP and gRPC listeners and stops them
// together on SIGINT, SIGTERM or SIGQUIT.
package server
