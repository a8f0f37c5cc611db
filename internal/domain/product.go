package domain

// Product is a single catalog entry. Price is in the smallest currency unit.
// Products are immutable once loaded; consumers copy the fields they need.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Description string   `json:"desc,omitempty"`
	Image       string   `json:"img,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// ImageList returns every image reference, folding the single img field into
// the list form used by cart persistence.
func (p Product) ImageList() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return nil
}
