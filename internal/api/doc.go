// Package api provides HTTP handlers for the tracker services.
package api
