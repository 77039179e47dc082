package types

// EstimateRequest is the body of POST /estimate-price.
// All four fields are required; pointers distinguish "missing" from zero.
type EstimateRequest struct {
	// Number of bedrooms/halls/kitchens (BHK).
	// example: 2
	BHK *float64 `json:"bhk" example:"2"`
	// Built-up area in square feet.
	// example: 1000
	Area *float64 `json:"area" example:"1000"`
	// Region name as listed by GET /regions. Case-insensitive.
	// example: wakad
	Region *string `json:"region" example:"wakad"`
	// Property type, e.g. flat or villa. Case-insensitive.
	// example: flat
	Type *string `json:"type" example:"flat"`
}

// EstimateResponse is returned by POST /estimate-price.
type EstimateResponse struct {
	// Estimated price rounded to two decimals.
	// example: 50.25
	EstimatedPrice float64 `json:"estimated_price" example:"50.25"`
}
