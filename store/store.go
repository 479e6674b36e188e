// Package store provides translation cache store implementations.
package store

import "github.com/ZaguanLabs/golingo"

// Store is the interface for translation cache persistence.
// This is an alias to the main package interface for convenience.
type Store = golingo.Store

// CacheEntry is an alias to the main package type.
type CacheEntry = golingo.CacheEntry
