// Package api serves the footprint calculator over HTTP.
//
// Routes live under /api/v1 and answer with a JSON envelope:
//
//	{"success": true, "data": {...}}
//	{"success": false, "error": "..."}
//
// Calculation, history and points routes require a bearer token that maps to
// a user ID in configuration.
package api
