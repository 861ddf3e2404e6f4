// Package newsharvest crawls a news aggregator, resolves each entry's
// canonical external source, extracts the original article body from
// arbitrary third-party HTML as readable markdown, classifies it into a
// topic category, and persists the results for downstream translation
// and publishing.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, ahocorasick/).
package newsharvest
