// Package http implements the REST transport of the service.
//
// Every request gets a trace id and an access-log line. Routes under /api
// other than /api/version require a bearer JWT whose subject is the user
// id. Service errors are translated to status codes in one place
// (errors_mapper.go).
package http
