package page

// Pages is a slice of Page objects. This is the most common list type.
type Pages []*Page

// Len returns the number of pages in the list.
func (p Pages) Len() int {
	return len(p)
}

// IDs returns the page IDs in list order.
func (p Pages) IDs() []string {
	ids := make([]string, len(p))
	for i, pp := range p {
		ids[i] = pp.ID()
	}
	return ids
}

// Get returns the page with the given ID, nil if not found.
func (p Pages) Get(id string) *Page {
	for _, pp := range p {
		if pp.ID() == id {
			return pp
		}
	}
	return nil
}
