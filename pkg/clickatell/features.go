package clickatell

// Feature is a required-feature bit for the req_feat parameter. The gateway
// does not enforce features by default and may route a message via a
// least-cost route that drops them; setting the bit forces a route that
// supports the feature.
type Feature int

// Feat8Bit, FeatUDH, FeatUCS2 and FeatConcat are enabled by default on the
// gateway side.
const (
	// FeatText marks a plain text message.
	FeatText Feature = 1
	// Feat8Bit marks 8-bit messaging.
	Feat8Bit Feature = 2
	// FeatUDH marks a binary user data header.
	FeatUDH Feature = 4
	// FeatUCS2 marks UCS2 / unicode content.
	FeatUCS2 Feature = 8
	// FeatAlpha marks an alphanumeric source address.
	FeatAlpha Feature = 16
	// FeatNumber marks a numeric source address.
	FeatNumber Feature = 32
	// FeatFlash marks flash messaging.
	FeatFlash Feature = 512
	// FeatDelivAck marks delivery acknowledgements.
	FeatDelivAck Feature = 8192
	// FeatConcat marks multi-part concatenation.
	FeatConcat Feature = 16384
)
