// Package http implements the stub wallet backend's HTTP transport.
//
// It exposes the user provisioning, token refresh, wallet and balance
// endpoints the wallet client talks to. Request tracing, access logging,
// CORS and X-User-Token authentication are handled here before requests
// reach the service layer. Application errors are answered with the
// backend's {code, message} payload.
package http
