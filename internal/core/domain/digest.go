package domain

// ContentDigest is the lower-case hex SHA-256 digest of a text blob.
// It is only ever compared for equality.
type ContentDigest string

// String returns the digest as a plain string.
func (d ContentDigest) String() string {
	return string(d)
}

// Short returns the first 12 characters of the digest for log output.
func (d ContentDigest) Short() string {
	const shortLen = 12
	if len(d) <= shortLen {
		return string(d)
	}
	return string(d[:shortLen])
}
