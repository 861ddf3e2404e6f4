package mock

import "github.com/jinhoo5694/newsharvest"

var _ newsharvest.Converter = (*Converter)(nil)

// Converter is a mock implementation of newsharvest.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
