package mock

import "github.com/jinhoo5694/newsharvest"

var _ newsharvest.ListingParser = (*ListingParser)(nil)

// ListingParser is a mock implementation of newsharvest.ListingParser.
type ListingParser struct {
	ParseListingFn func(html string) ([]newsharvest.ListingEntry, error)
}

func (p *ListingParser) ParseListing(html string) ([]newsharvest.ListingEntry, error) {
	return p.ParseListingFn(html)
}

var _ newsharvest.TopicParser = (*TopicParser)(nil)

// TopicParser is a mock implementation of newsharvest.TopicParser.
type TopicParser struct {
	ParseTopicFn func(html string, pageURL string) (*newsharvest.TopicInfo, error)
}

func (p *TopicParser) ParseTopic(html string, pageURL string) (*newsharvest.TopicInfo, error) {
	return p.ParseTopicFn(html, pageURL)
}
