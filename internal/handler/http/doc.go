// Package http exposes the service over HTTP.
//
// The surface is a small JSON API: account registration and cookie-based
// login/logout, CRUD over the periodic table (mutations require an
// authenticated session) and three read-only analytical queries. Rejected
// payloads answer 422 with a single machine-readable violation code.
package http
