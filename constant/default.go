package constant

// Fallback values substituted when an enrichment fetch fails.
const (
	PlaceholderPhotoURL = "https://picsum.photos/800/400"
	AnonymousUserID     = "0"
	AnonymousUsername   = "Anonymous"
	UnknownProductTitle = "Unknown product"
	UserNotFoundName    = "User Not Found"
	DefaultSoldCount    = 0
	DefaultRating       = 0
)

// Destination used for shipping estimates when the buyer has no stored location.
const (
	DefaultCheckoutLat = 36.62035
	DefaultCheckoutLon = -4.49976
)

const (
	UsernameDiscriminator = "#"
	DescriptionPreviewLen = 30
	LoginAdvisory         = "Log in to make bids, chat with the product owner and more!"
)
