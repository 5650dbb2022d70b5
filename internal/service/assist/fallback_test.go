package assist

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/prospot/prospot-api/internal/domain"
)

func TestFallbackClassifyKeywordTable(t *testing.T) {
	cases := []struct {
		query string
		want  domain.Category
	}{
		{"se me rompió el auto", domain.CategoryAutomotive},
		{"cambiar frenos urgente", domain.CategoryAutomotive},
		{"no anda la luz del comedor", domain.CategoryHomeRepair},
		{"pérdida de agua en la cocina", domain.CategoryHomeRepair},
		{"me duele un diente", domain.CategoryHealth},
		{"mi pc no enciende", domain.CategoryTechnology},
		{"busco dj para fiesta", domain.CategoryEvents},
		{"clases de matemática", domain.CategoryEducation},
		{"necesito un contador", domain.CategoryBusiness},
		{"algo totalmente distinto", domain.CategoryAll},
	}
	svc := NewFallback()

	for _, tc := range cases {
		got, err := svc.Classify(context.Background(), tc.query)
		if err != nil {
			t.Fatalf("Classify(%q): %v", tc.query, err)
		}
		if got.TargetCategory != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.query, got.TargetCategory, tc.want)
		}
	}
}

func TestFallbackClassifyIsDeterministic(t *testing.T) {
	svc := NewFallback()

	first, err := svc.Classify(context.Background(), "mecanico en godoy cruz")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	second, err := svc.Classify(context.Background(), "mecanico en godoy cruz")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if first.TargetCategory != second.TargetCategory || first.Reasoning != second.Reasoning {
		t.Fatal("expected identical answers for identical queries")
	}
	if len(first.RecommendedKeywords) == 0 {
		t.Fatal("expected recommended keywords")
	}
}

func TestFallbackDescribeUsesTemplate(t *testing.T) {
	svc := NewFallback()

	got, err := svc.Describe(context.Background(), "Taller Norte", "Automotriz", "Mecánica integral")
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if !strings.Contains(got.Description, "Taller Norte") || !strings.Contains(got.Description, "Mendoza") {
		t.Fatalf("unexpected description: %q", got.Description)
	}
	if len(got.Tags) != 5 {
		t.Fatalf("expected 5 tags, got %d", len(got.Tags))
	}
}

type failingAssist struct{}

func (failingAssist) Classify(context.Context, string) (*Classification, error) {
	return nil, errors.New("upstream exploded")
}

func (failingAssist) Describe(context.Context, string, string, string) (*Copy, error) {
	return nil, errors.New("upstream exploded")
}

func TestWithFallbackDegradesOnError(t *testing.T) {
	svc := NewWithFallback(failingAssist{})

	got, err := svc.Classify(context.Background(), "freno roto")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got.TargetCategory != domain.CategoryAutomotive {
		t.Fatalf("expected heuristic answer, got %s", got.TargetCategory)
	}

	text, err := svc.Describe(context.Background(), "X", "Eventos", "DJ")
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if text.Description == "" {
		t.Fatal("expected fallback copy")
	}
}

func TestWithFallbackNilPrimary(t *testing.T) {
	svc := NewWithFallback(nil)

	got, err := svc.Classify(context.Background(), "impuestos")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got.TargetCategory != domain.CategoryBusiness {
		t.Fatalf("expected business category, got %s", got.TargetCategory)
	}
}

func TestExtractJSONStripsFences(t *testing.T) {
	raw := "```json\n{\"description\": \"hola\", \"tags\": []}\n```"
	var out Copy
	if err := json.Unmarshal(extractJSON(raw), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Description != "hola" {
		t.Fatalf("expected parsed description, got %q", out.Description)
	}
}
