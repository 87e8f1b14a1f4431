package icecat

import "testing"

func TestExtractTitlePathOrder(t *testing.T) {
	// dataSheet.productName outranks the deeper GeneralInfo locations
	tree := map[string]any{
		"dataSheet": map[string]any{
			"productName": "ThinkPad X1 Carbon",
		},
		"data": map[string]any{
			"GeneralInfo": map[string]any{
				"Title": "should not win",
			},
		},
	}

	title, ok := ExtractTitle(tree)
	if !ok {
		t.Fatal("expected a title")
	}
	if title != "ThinkPad X1 Carbon" {
		t.Fatalf("got %q", title)
	}
}

func TestExtractTitleNestedGeneratedLocal(t *testing.T) {
	tree := map[string]any{
		"data": map[string]any{
			"GeneralInfo": map[string]any{
				"TitleInfo": map[string]any{
					"GeneratedLocalTitle": map[string]any{
						"Value": "  Logitech MX Master 3S  ",
					},
				},
			},
		},
	}

	title, ok := ExtractTitle(tree)
	if !ok {
		t.Fatal("expected a title")
	}
	if title != "Logitech MX Master 3S" {
		t.Fatalf("whitespace not trimmed: %q", title)
	}
}

func TestExtractTitleSkipsEmptyAndNonString(t *testing.T) {
	tree := map[string]any{
		"dataSheet": map[string]any{
			"productName": "   ",
			"title":       42,
		},
		"product": map[string]any{
			"title": "Fallback Product",
		},
	}

	title, ok := ExtractTitle(tree)
	if !ok {
		t.Fatal("expected a title")
	}
	if title != "Fallback Product" {
		t.Fatalf("got %q", title)
	}
}

func TestExtractTitleMiss(t *testing.T) {
	if _, ok := ExtractTitle(map[string]any{"unrelated": "x"}); ok {
		t.Fatal("expected a miss")
	}
	if _, ok := ExtractTitle(nil); ok {
		t.Fatal("expected a miss on nil tree")
	}
}

func TestExtractCategoryAndBrand(t *testing.T) {
	tree := map[string]any{
		"data": map[string]any{
			"GeneralInfo": map[string]any{
				"Category": map[string]any{
					"Name": map[string]any{"Value": "Notebooks"},
				},
				"Brand": "Lenovo",
			},
		},
	}

	category, ok := ExtractCategory(tree)
	if !ok || category != "Notebooks" {
		t.Fatalf("category = %q, ok = %v", category, ok)
	}
	brand, ok := ExtractBrand(tree)
	if !ok || brand != "Lenovo" {
		t.Fatalf("brand = %q, ok = %v", brand, ok)
	}
}
