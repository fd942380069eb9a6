// Package models defines the catalog API's wire types used by the client:
// the response envelope, book records, global settings and login payloads.
package models
