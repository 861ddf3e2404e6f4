package goquery_test

import (
	"testing"

	harvestquery "github.com/jinhoo5694/newsharvest/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListing_ParseListing(t *testing.T) {
	t.Parallel()

	t.Run("parses a row with cross-referenced topic id", func(t *testing.T) {
		t.Parallel()

		html := `
		<html><body>
		<div class="topic_row">
			<div class="topictitle">
				<a href="https://example.com/post" target="_blank" rel="nofollow"><h1>Example Post</h1></a>
			</div>
			<div class="topicdesc">
				<a href="topic?id=42">Example Post summary and discussion</a>
			</div>
		</div>
		</body></html>`

		parser := harvestquery.NewListing()
		entries, err := parser.ParseListing(html)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		assert.Equal(t, "Example Post", entries[0].Title)
		assert.Equal(t, "https://example.com/post", entries[0].SourceURL)
		assert.Equal(t, "42", entries[0].TopicID)
	})

	t.Run("falls back to id on the row's own anchor", func(t *testing.T) {
		t.Parallel()

		html := `
		<div class="topic_row">
			<a href="https://example.com/post" rel="nofollow" data-topic-id="77"><h1>Orphan Row</h1></a>
		</div>`

		parser := harvestquery.NewListing()
		entries, err := parser.ParseListing(html)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		assert.Equal(t, "77", entries[0].TopicID)
	})

	t.Run("leaves topic id empty when nothing matches", func(t *testing.T) {
		t.Parallel()

		html := `
		<div class="topic_row">
			<a href="https://example.com/post" rel="nofollow"><h1>No Id Here</h1></a>
		</div>`

		parser := harvestquery.NewListing()
		entries, err := parser.ParseListing(html)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		assert.Empty(t, entries[0].TopicID)
	})

	t.Run("prefers the cross-referenced id over the row id", func(t *testing.T) {
		t.Parallel()

		html := `
		<div>
			<a href="https://example.com/v2" rel="nofollow" data-topic-id="11"><h2>Release Notes v2</h2></a>
			<a href="/topic?id=99">Release Notes v2 (45 comments)</a>
		</div>`

		parser := harvestquery.NewListing()
		entries, err := parser.ParseListing(html)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		assert.Equal(t, "99", entries[0].TopicID)
	})

	t.Run("parses multiple rows with distinct topic ids", func(t *testing.T) {
		t.Parallel()

		html := `
		<body>
		<div><a href="https://a.example.com/x" rel="nofollow"><h1>First Article Title</h1></a></div>
		<div><a href="topic?id=1">first article title and more</a></div>
		<div><a href="https://b.example.com/y" rel="nofollow"><h1>Second Article Title</h1></a></div>
		<div><a href="topic?id=2">second article title continued</a></div>
		</body>`

		parser := harvestquery.NewListing()
		entries, err := parser.ParseListing(html)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "1", entries[0].TopicID)
		assert.Equal(t, "2", entries[1].TopicID)
	})

	t.Run("ignores anchors without nofollow", func(t *testing.T) {
		t.Parallel()

		html := `<div><a href="https://example.com/about"><h1>About Us</h1></a></div>`

		parser := harvestquery.NewListing()
		entries, err := parser.ParseListing(html)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("skips rows without a title", func(t *testing.T) {
		t.Parallel()

		html := `<div><a href="https://example.com/post" rel="nofollow"></a></div>`

		parser := harvestquery.NewListing()
		entries, err := parser.ParseListing(html)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("keeps aggregator-internal entries for later resolution", func(t *testing.T) {
		t.Parallel()

		html := `<div><a href="topic?id=55" rel="nofollow"><h1>Ask: how do you test crawlers?</h1></a></div>`

		parser := harvestquery.NewListing()
		entries, err := parser.ParseListing(html)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		assert.Equal(t, "topic?id=55", entries[0].SourceURL)
		assert.Equal(t, "55", entries[0].TopicID)
	})
}
