// Package api handles incoming HTTP requests, request validation and
// response formatting. It acts as an adapter between HTTP clients and the
// generation layer, translating generation failures into status codes and
// safe, stable error messages.
package api
