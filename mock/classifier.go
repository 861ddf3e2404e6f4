package mock

import "github.com/jinhoo5694/newsharvest"

var _ newsharvest.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of newsharvest.Classifier.
type Classifier struct {
	ClassifyFn func(title, content string) newsharvest.Category
}

func (c *Classifier) Classify(title, content string) newsharvest.Category {
	return c.ClassifyFn(title, content)
}
