// Package golingo provides a localization engine with content-hash keyed
// translation caching.
//
// Golingo translates content through pluggable backends and caches the
// results in an append-friendly store (in-memory, Redis, or DynamoDB) with
// TTL-based expiry and per-entry usage tracking.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/golingo"
//	    "github.com/ZaguanLabs/golingo/provider"
//	    "github.com/ZaguanLabs/golingo/store"
//	)
//
//	func main() {
//	    // Create backend
//	    p := provider.NewStatic()
//
//	    // Create translator
//	    t := golingo.NewTranslator(p,
//	        golingo.WithStore(store.NewMemoryStore()),
//	    )
//
//	    // Translate content
//	    result, err := t.Translate(context.Background(), golingo.TranslateRequest{
//	        Content:    "Analyze",
//	        TargetLang: "es",
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.TranslatedContent) // Analizar
//	}
package golingo
