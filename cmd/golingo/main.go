// Command golingo translates text and looks up localized UI messages.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ZaguanLabs/golingo"
	"github.com/ZaguanLabs/golingo/catalog"
	"github.com/ZaguanLabs/golingo/provider"
	"github.com/ZaguanLabs/golingo/store"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = golingo.Version
	commit    = golingo.GitCommit
	buildDate = golingo.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("golingo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	targetLang := fs.String("lang", "", "Target language code (e.g., es, fr)")
	sourceLang := fs.String("source", "en", "Source language code")
	contextStr := fs.String("context", "", "Translation context (e.g., 'agriculture')")
	noCache := fs.Bool("no-cache", false, "Bypass the translation cache")
	ttl := fs.Duration("ttl", 0, "Cache TTL for new entries (0 uses the default)")
	backendName := fs.String("backend", "static", "Translation backend (static or openai)")
	apiKey := fs.String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	model := fs.String("model", "gpt-4o-mini", "OpenAI model to use")
	messageKey := fs.String("message", "", "Look up a UI message by key instead of translating")
	namespace := fs.String("namespace", "", "List the UI messages in a namespace")
	catalogPath := fs.String("catalog", "", "Message bundle file to load (JSON)")
	listLanguages := fs.Bool("list-languages", false, "List available languages")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", golingo.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	if *listLanguages {
		return runListLanguages(stdout, *jsonOutput)
	}

	if *messageKey != "" {
		lang := *targetLang
		if lang == "" {
			lang = golingo.DefaultLanguage
		}
		return runMessage(stdout, *messageKey, lang, *catalogPath, *jsonOutput)
	}

	if *namespace != "" {
		lang := *targetLang
		if lang == "" {
			lang = golingo.DefaultLanguage
		}
		return runNamespace(stdout, *namespace, lang, *catalogPath, *jsonOutput)
	}

	// Validate required flags
	if *targetLang == "" {
		fs.Usage()
		return fmt.Errorf("--lang is required")
	}

	// Get input
	var input string
	if fs.NArg() == 0 {
		// Read from stdin
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = strings.TrimSpace(string(data))
	} else {
		input = strings.Join(fs.Args(), " ")
	}

	if input == "" {
		return fmt.Errorf("nothing to translate")
	}

	// Create provider
	p, err := newProvider(*backendName, *apiKey, *model)
	if err != nil {
		return err
	}

	// Wrap with retry
	retryable := golingo.NewRetryableProvider(p, golingo.DefaultRetryConfig())

	// Build options
	opts := []golingo.TranslatorOption{
		golingo.WithStore(store.NewMemoryStore()),
		golingo.WithSourceLang(*sourceLang),
	}

	if *ttl > 0 {
		opts = append(opts, golingo.WithTTL(*ttl))
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer logger.Sync() // #nosec G104 - best-effort flush on exit
		opts = append(opts, golingo.WithLogger(logger))
	}

	// Create translator
	translator := golingo.NewTranslator(retryable, opts...)

	// Translate
	if !*quiet {
		fmt.Fprintf(stderr, "Translating to %s...\n", *targetLang)
	}

	start := time.Now()
	result, err := translator.Translate(context.Background(), golingo.TranslateRequest{
		Content:    input,
		TargetLang: *targetLang,
		SourceLang: *sourceLang,
		Context:    *contextStr,
		NoCache:    *noCache,
	})
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}
	elapsed := time.Since(start)

	if *jsonOutput {
		return outputJSON(stdout, result, elapsed)
	}

	fmt.Fprintln(stdout, result.TranslatedContent)

	// Stats
	if !*quiet {
		fmt.Fprintf(stderr, "\nDone in %v\n", elapsed.Round(time.Millisecond))
		fmt.Fprintf(stderr, "  Backend:     %s\n", result.Backend)
		fmt.Fprintf(stderr, "  Confidence:  %.2f\n", result.ConfidenceScore)
		fmt.Fprintf(stderr, "  From cache:  %t\n", result.Cached)
	}

	return nil
}

// newProvider builds the translation backend for the requested name.
func newProvider(name, apiKey, model string) (golingo.Provider, error) {
	switch name {
	case "static":
		return provider.NewStatic(), nil
	case "openai":
		key := apiKey
		if key == "" {
			key = os.Getenv("OPENAI_API_KEY")
		}
		if key == "" {
			return nil, fmt.Errorf("OpenAI API key required (--api-key or OPENAI_API_KEY env)")
		}
		return provider.NewOpenAI(provider.OpenAIConfig{APIKey: key, Model: model}), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want static or openai)", name)
	}
}

// runListLanguages prints the available languages.
func runListLanguages(stdout io.Writer, jsonOut bool) error {
	langs := golingo.DefaultLanguages()

	if jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(langs)
	}

	for _, lang := range langs {
		fmt.Fprintf(stdout, "%s %-6s %s (%s)\n", lang.Flag, lang.Code, lang.Name, lang.EnglishName)
	}
	return nil
}

// runMessage looks up a UI message in the catalog.
func runMessage(stdout io.Writer, key, lang, catalogPath string, jsonOut bool) error {
	cat := catalog.Default()

	if catalogPath != "" {
		imp := catalog.NewImporter(cat)
		if _, err := imp.ImportFromFile(catalogPath); err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
	}

	value := cat.Get(key, lang, "")

	if jsonOut {
		type messageOutput struct {
			Key      string `json:"key"`
			Language string `json:"language"`
			Value    string `json:"value"`
			Found    bool   `json:"found"`
		}

		_, found := cat.Lookup(key, lang)
		if !found {
			_, found = cat.Lookup(key, golingo.DefaultLanguage)
		}

		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(messageOutput{Key: key, Language: lang, Value: value, Found: found})
	}

	fmt.Fprintln(stdout, value)
	return nil
}

// runNamespace prints every message in a catalog namespace.
func runNamespace(stdout io.Writer, namespace, lang, catalogPath string, jsonOut bool) error {
	cat := catalog.Default()

	if catalogPath != "" {
		imp := catalog.NewImporter(cat)
		if _, err := imp.ImportFromFile(catalogPath); err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
	}

	msgs := cat.Namespace(lang, namespace)

	if jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(msgs)
	}

	keys := make([]string, 0, len(msgs))
	for key := range msgs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(stdout, "%-32s %s\n", key, msgs[key])
	}
	return nil
}

// JSONOutput represents the JSON output format.
type JSONOutput struct {
	golingo.Result
	ElapsedMs int64 `json:"elapsedMs"`
}

// outputJSON writes the result as JSON.
func outputJSON(w io.Writer, result *golingo.Result, elapsed time.Duration) error {
	out := JSONOutput{
		Result:    *result,
		ElapsedMs: elapsed.Milliseconds(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
