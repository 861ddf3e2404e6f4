// Package ahocorasick provides keyword-based article classification
// using Aho-Corasick multi-pattern matching.
package ahocorasick

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/jinhoo5694/newsharvest"
)

// Ensure Classifier implements newsharvest.Classifier at compile time.
var _ newsharvest.Classifier = (*Classifier)(nil)

// categoryKeywords is the match vocabulary per category. Order is
// significant: earlier categories win when several match, so an article
// mentioning both "AI" and "startup" is classified AI.
var categoryKeywords = []struct {
	category newsharvest.Category
	keywords []string
}{
	{newsharvest.CategoryAI, []string{
		"ai", "llm", "gpt", "claude", "gemini", "llama", "openai",
		"machine learning", "neural", "agent",
	}},
	{newsharvest.CategoryStartup, []string{
		"startup", "founder", "invest", "acqui", "vc", "funding",
		"ceo", "company",
	}},
	{newsharvest.CategoryTutorial, []string{
		"tutorial", "learn", "guide", "how to", "getting started",
	}},
	{newsharvest.CategoryTrend, []string{
		"trend", "future", "state of", "review", "outlook",
	}},
}

type categoryMatcher struct {
	category newsharvest.Category
	matcher  *ahocorasick.Matcher
}

// Classifier assigns articles to categories by ordered keyword matching.
// It is deterministic and total: every input maps to exactly one valid
// category, with CategoryDev as the fallback.
type Classifier struct {
	matchers []categoryMatcher
}

// NewClassifier creates a Classifier with the built-in vocabulary.
func NewClassifier() *Classifier {
	c := &Classifier{}
	for _, ck := range categoryKeywords {
		c.matchers = append(c.matchers, categoryMatcher{
			category: ck.category,
			matcher:  ahocorasick.NewStringMatcher(ck.keywords),
		})
	}
	return c
}

// Classify returns the first category whose vocabulary matches anywhere
// in the lowercased title and content.
func (c *Classifier) Classify(title, content string) newsharvest.Category {
	text := []byte(strings.ToLower(title + " " + content))
	for _, m := range c.matchers {
		if len(m.matcher.Match(text)) > 0 {
			return m.category
		}
	}
	return newsharvest.CategoryDev
}
