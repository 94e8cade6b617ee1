// ABOUTME: Product model shared by the catalog, overlay, and view layers
// ABOUTME: Carries an explicit origin tag instead of inferring provenance from id shape

package catalog

// Origin identifies which store owns a product record.
type Origin string

const (
	// OriginRemote marks records fetched from the catalog service. They are
	// immutable durably; edits and deletes apply only as session shadows.
	OriginRemote Origin = "remote"

	// OriginLocal marks records created on this client. They are fully owned
	// by the local overlay journal.
	OriginLocal Origin = "local"
)

// Rating is the optional review summary attached to remote products.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is a single catalog entry. ID is unique within the merged
// collection regardless of origin.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating,omitzero"`
	Origin      Origin  `json:"origin"`
}
