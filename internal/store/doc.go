// Package store defines the persistence contracts for the tracker
// services: the DBTX database abstraction, the generic TrackerStore
// interface with its per-resource descriptors, sentinel errors, and the
// request-scoped connection carry used by the connection middleware.
package store
