package provider

import (
	"context"
	"strings"
)

// StaticName is the backend identifier reported by Static.
const StaticName = "static"

// StaticConfidence is the fixed confidence score reported by Static.
const StaticConfidence = 0.85

// Static is a deterministic translation backend built on a fixed phrase
// table. Content without a table entry falls back to the original text
// prefixed with the upper-cased target language, e.g. "[ES] Analyze".
//
// It stands in for a live AI provider and keeps the translation pipeline
// fully functional offline.
type Static struct {
	tables map[string]map[string]string
}

// NewStatic creates a static backend with the built-in phrase tables.
func NewStatic() *Static {
	return &Static{tables: staticTables()}
}

// NewStaticWithTables creates a static backend with custom phrase tables,
// keyed by target language and then by exact content.
func NewStaticWithTables(tables map[string]map[string]string) *Static {
	return &Static{tables: tables}
}

// Translate returns the table translation for the request content, or the
// language-tagged fallback when no table entry exists.
func (s *Static) Translate(ctx context.Context, req TranslateRequest) (Translation, error) {
	if table, ok := s.tables[req.TargetLang]; ok {
		if text, ok := table[req.Content]; ok {
			return Translation{Text: text, Confidence: StaticConfidence, Backend: StaticName}, nil
		}
	}

	return Translation{
		Text:       "[" + strings.ToUpper(req.TargetLang) + "] " + req.Content,
		Confidence: StaticConfidence,
		Backend:    StaticName,
	}, nil
}

// staticTables returns the built-in phrase tables.
func staticTables() map[string]map[string]string {
	return map[string]map[string]string{
		"es": { // Spanish
			"Early blight disease detected": "Enfermedad de tizón temprano detectada",
			"Late blight disease detected":  "Enfermedad de tizón tardío detectada",
			"Healthy potato leaf":           "Hoja de papa saludable",
			"Upload Image":                  "Subir Imagen",
			"Analyze":                       "Analizar",
			"Results":                       "Resultados",
			"Disease Analysis":              "Análisis de Enfermedad",
			"Treatment Recommendations":     "Recomendaciones de Tratamiento",
		},
		"fr": { // French
			"Early blight disease detected": "Maladie de la brûlure précoce détectée",
			"Late blight disease detected":  "Maladie de la brûlure tardive détectée",
			"Healthy potato leaf":           "Feuille de pomme de terre saine",
			"Upload Image":                  "Télécharger l'image",
			"Analyze":                       "Analyser",
			"Results":                       "Résultats",
			"Disease Analysis":              "Analyse des maladies",
			"Treatment Recommendations":     "Recommandations de traitement",
		},
		"hi": { // Hindi
			"Early blight disease detected": "प्रारंभिक अंगमारी रोग का पता चला",
			"Late blight disease detected":  "देर से अंगमारी रोग का पता चला",
			"Healthy potato leaf":           "स्वस्थ आलू का पत्ता",
			"Upload Image":                  "छवि अपलोड करें",
			"Analyze":                       "विश्लेषण करें",
			"Results":                       "परिणाम",
			"Disease Analysis":              "रोग विश्लेषण",
			"Treatment Recommendations":     "उपचार की सिफारिशें",
		},
		"zh": { // Chinese (Simplified)
			"Early blight disease detected": "检测到早疫病",
			"Late blight disease detected":  "检测到晚疫病",
			"Healthy potato leaf":           "健康的马铃薯叶",
			"Upload Image":                  "上传图片",
			"Analyze":                       "分析",
			"Results":                       "结果",
			"Disease Analysis":              "疾病分析",
			"Treatment Recommendations":     "治疗建议",
		},
	}
}

// Verify Static implements Provider
var _ Provider = (*Static)(nil)
