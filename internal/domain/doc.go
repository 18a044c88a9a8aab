// Package domain contains the core entity types for the tracker
// services. These types are pure data carriers with no dependencies on
// storage or transport concerns.
package domain
