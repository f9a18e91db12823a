package errs

// Category markers. Domain sentinels are marked with exactly one of these
// so the transport layer can map a failure without knowing every sentinel.
var (
	// Malformed input (bad code format, negative amount)
	ErrValidation = New("category: validation failed")

	// Partner, coupon, commission or payout does not exist
	ErrNotFound = New("category: not found")

	// Entity exists but its state forbids the operation (inactive partner, expired coupon)
	ErrInvalidState = New("category: invalid state")

	// Business policy rejected the request (usage limit reached, below minimum order)
	ErrPolicyViolation = New("category: policy violation")

	// Operation conflicts with one already recorded
	ErrDuplicateOperation = New("category: duplicate operation")

	// Settlement or another collaborator failed; retried on the next cycle
	ErrDownstreamFailure = New("category: downstream failure")
)

// Sentinel constructs a domain error carrying a category marker.
func Sentinel(msg string, category error) error {
	return Mark(New(msg), category)
}
