// Package observe provides observability primitives for secret lookups.
//
// It is a pure instrumentation library: no storage, no transport, no I/O
// beyond exporter setup. Consumers wire the observer into the resolver or
// wrap individual store lookups with Middleware. The structured logger
// redacts secret material so credential values never reach log output.
package observe
