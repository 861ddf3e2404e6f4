package mock

import "github.com/jinhoo5694/newsharvest"

var _ newsharvest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsharvest.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*newsharvest.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*newsharvest.ExtractResult, error) {
	return e.ExtractFn(html)
}
