package usage

// DefaultScanLimit is the free-tier scan cap per user.
const DefaultScanLimit = 3

func defaultUsage(limit int) Usage {
	if limit <= 0 {
		limit = DefaultScanLimit
	}
	return Usage{
		Plan:  "Free",
		Limit: limit,
		Used:  0,
	}
}
