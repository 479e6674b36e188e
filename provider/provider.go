// Package provider defines the translation backend interface and implementations.
package provider

import "github.com/ZaguanLabs/golingo"

// Provider is the interface for translation backends.
// This is an alias to the main package interface for convenience.
type Provider = golingo.Provider

// TranslateRequest is an alias to the main package type.
type TranslateRequest = golingo.TranslateRequest

// Translation is an alias to the main package type.
type Translation = golingo.Translation
