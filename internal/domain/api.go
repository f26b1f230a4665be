package domain

// Raw wire types for the market API. These mirror the JSON the backend
// returns; they are loosely typed on purpose (optional localized fields,
// hide flags, priority ordering) and are converted to the strict model by
// Normalize before anything else sees them.

// LocalizedText is a per-locale string map as returned by the API.
// Any of the fields may be empty.
type LocalizedText struct {
	AR string `json:"ar"`
	EN string `json:"en-US"`
	HE string `json:"he"`
	FR string `json:"fr"`
}

// Resolve picks a display string using the app's fallback chain
// (en-US → ar → he → fr). Returns "" when every locale is empty.
func (t LocalizedText) Resolve() string {
	for _, s := range []string{t.EN, t.AR, t.HE, t.FR} {
		if s != "" {
			return s
		}
	}
	return ""
}

// APIProductImage is one image attachment of a product.
type APIProductImage struct {
	ID             int    `json:"id"`
	Priority       int    `json:"priority"`
	ServerImageURL string `json:"serverImageUrl"`
	SmallImageURL  string `json:"smallImageUrl"`
}

// APIProduct is a product as the API sends it.
type APIProduct struct {
	ID            int               `json:"id"`
	Name          LocalizedText     `json:"name"`
	Description   LocalizedText     `json:"description"`
	Priority      int               `json:"priority"`
	BasePrice     float64           `json:"basePrice"`
	DiscountPrice float64           `json:"discountPrice"`
	Hide          bool              `json:"hide"`
	NotAvailable  bool              `json:"notAvailable"`
	ProductImages []APIProductImage `json:"productImages"`
}

// APISubCategory is a subcategory as the API sends it.
type APISubCategory struct {
	ID             int           `json:"id"`
	Name           LocalizedText `json:"name"`
	ServerImageURL string        `json:"serverImageUrl"`
	Priority       int           `json:"priority"`
	Hide           bool          `json:"hide"`
	Products       []APIProduct  `json:"products"`
	ProductsCount  int           `json:"productsCount"`
}

// APICategory is a category as the API sends it.
type APICategory struct {
	ID                  int              `json:"id"`
	Name                LocalizedText    `json:"name"`
	ServerImageURL      string           `json:"serverImageUrl"`
	Priority            int              `json:"priority"`
	Hide                bool             `json:"hide"`
	MarketSubcategories []APISubCategory `json:"marketSubcategories"`
}

// APIMarket is the payload of GET /markets/{id}.
type APIMarket struct {
	ID               int           `json:"id"`
	Name             LocalizedText `json:"name"`
	Address          LocalizedText `json:"address"`
	MarketCategories []APICategory `json:"marketCategories"`
}

// APICategoryDetail is the payload of GET /markets/{id}/categories/{categoryId}.
// Same shape as a category, used to lazily deepen one category's data.
type APICategoryDetail = APICategory
