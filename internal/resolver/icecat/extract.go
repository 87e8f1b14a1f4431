package icecat

import "strings"

// The live catalog API has no stable response shape: the product title and its
// metadata move between several nested locations depending on account tier and
// language. Extraction is an ordered list of explicit paths over the untyped
// response tree; the first path ending in a non-empty string wins.

var titlePaths = [][]string{
	{"dataSheet", "productName"},
	{"dataSheet", "title"},
	{"summaryDescription", "title"},
	{"product", "title"},
	{"product", "Title"},
	{"data", "GeneralInfo", "Title"},
	{"data", "GeneralInfo", "TitleInfo", "GeneratedLocalTitle", "Value"},
	{"data", "GeneralInfo", "TitleInfo", "GeneratedIntTitle"},
}

var categoryPaths = [][]string{
	{"data", "GeneralInfo", "Category", "Name", "Value"},
	{"data", "GeneralInfo", "CategoryName"},
	{"dataSheet", "category", "Name"},
}

var brandPaths = [][]string{
	{"data", "GeneralInfo", "Brand"},
	{"GeneralInfo", "Brand"},
}

// ExtractTitle probes the known title locations and returns the first
// non-empty string found.
func ExtractTitle(tree map[string]any) (string, bool) {
	return firstString(tree, titlePaths)
}

// ExtractCategory returns the category name if any known location holds one.
func ExtractCategory(tree map[string]any) (string, bool) {
	return firstString(tree, categoryPaths)
}

// ExtractBrand returns the brand name if any known location holds one.
func ExtractBrand(tree map[string]any) (string, bool) {
	return firstString(tree, brandPaths)
}

func firstString(tree map[string]any, paths [][]string) (string, bool) {
	for _, path := range paths {
		if v, ok := stringAt(tree, path); ok {
			return v, true
		}
	}
	return "", false
}

func stringAt(tree map[string]any, path []string) (string, bool) {
	var node any = tree
	for _, key := range path {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		node, ok = m[key]
		if !ok {
			return "", false
		}
	}
	s, ok := node.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}
