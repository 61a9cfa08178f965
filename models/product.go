package models

// Product is a digital marketplace item.
// Collection: product
type Product struct {
	SKU           string            `json:"sku" bson:"sku"`
	TitleEN       string            `json:"title_en" bson:"title_en"`
	TitleZH       string            `json:"title_zh" bson:"title_zh"`
	DescriptionEN *string           `json:"description_en,omitempty" bson:"description_en,omitempty"`
	DescriptionZH *string           `json:"description_zh,omitempty" bson:"description_zh,omitempty"`
	Price         float64           `json:"price" bson:"price"`
	Currency      string            `json:"currency" bson:"currency"`
	Categories    []string          `json:"categories" bson:"categories"`
	MediaURLs     []string          `json:"media_urls" bson:"media_urls"`
	Attributes    map[string]string `json:"attributes" bson:"attributes"`
	Status        string            `json:"status" bson:"status"` // active, hidden, archived
}

// ProductView is the single-language projection of a product listing.
type ProductView struct {
	SKU         string   `json:"sku"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	MediaURLs   []string `json:"media_urls"`
	Status      string   `json:"status"`
}

func (p *Product) Localize(loc Locale) ProductView {
	return ProductView{
		SKU:         p.SKU,
		Title:       pick(loc, p.TitleEN, p.TitleZH),
		Description: pickPtr(loc, p.DescriptionEN, p.DescriptionZH),
		Price:       p.Price,
		Currency:    p.Currency,
		MediaURLs:   p.MediaURLs,
		Status:      p.Status,
	}
}

// CreateProductRequest is the payload for POST /api/products.
type CreateProductRequest struct {
	SKU           string            `json:"sku" binding:"required"`
	TitleEN       string            `json:"title_en" binding:"required"`
	TitleZH       string            `json:"title_zh" binding:"required"`
	DescriptionEN *string           `json:"description_en"`
	DescriptionZH *string           `json:"description_zh"`
	Price         float64           `json:"price" binding:"gte=0"`
	Currency      string            `json:"currency"`
	Categories    []string          `json:"categories"`
	MediaURLs     []string          `json:"media_urls"`
	Attributes    map[string]string `json:"attributes"`
	Status        string            `json:"status"`
}
