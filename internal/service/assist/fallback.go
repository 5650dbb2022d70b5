package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/prospot/prospot-api/internal/domain"
)

// keywordRules map query fragments to a category, checked in order. First
// rule with a match wins.
var keywordRules = []struct {
	fragments []string
	category  domain.Category
}{
	{[]string{"auto", "mecanico", "freno", "rueda"}, domain.CategoryAutomotive},
	{[]string{"luz", "cable", "enchufe"}, domain.CategoryHomeRepair},
	{[]string{"agua", "caño", "gas"}, domain.CategoryHomeRepair},
	{[]string{"diente", "dolor", "medico"}, domain.CategoryHealth},
	{[]string{"compu", "pc", "celular"}, domain.CategoryTechnology},
	{[]string{"evento", "dj", "fiesta"}, domain.CategoryEvents},
	{[]string{"clase", "profe"}, domain.CategoryEducation},
	{[]string{"contador", "impuesto"}, domain.CategoryBusiness},
}

// Fallback answers assist queries from a local keyword table. It is
// deterministic and never errors, which makes it both the degraded mode
// behind WithFallback and the default when no API key is configured.
type Fallback struct{}

// NewFallback creates the local heuristic service.
func NewFallback() *Fallback {
	return &Fallback{}
}

// Classify scans the query for known keywords. Unmatched queries map to the
// catch-all category.
func (f *Fallback) Classify(_ context.Context, query string) (*Classification, error) {
	lower := strings.ToLower(query)
	cat := domain.CategoryAll
	for _, rule := range keywordRules {
		if containsAny(lower, rule.fragments) {
			cat = rule.category
			break
		}
	}
	return &Classification{
		TargetCategory:      cat,
		Reasoning:           "Modo Simulado: Análisis de palabras clave locales.",
		RecommendedKeywords: []string{query, "Servicio Local", "Mendoza", string(cat)},
	}, nil
}

// Describe fills the templated Spanish copy.
func (f *Fallback) Describe(_ context.Context, name, category, title string) (*Copy, error) {
	return &Copy{
		Description: fmt.Sprintf(
			"En %s nos especializamos en %s. Ofrecemos servicios de %s con la mejor atención y calidad en Mendoza. Contáctanos para recibir asesoramiento personalizado y soluciones rápidas.",
			name, category, title,
		),
		Tags: []string{category, "Mendoza", "Profesional", "Calidad", "Confianza"},
	}, nil
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}

var _ Service = (*Fallback)(nil)
