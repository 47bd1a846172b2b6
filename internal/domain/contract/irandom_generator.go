package contract

type IRandomGenerator interface {
	// GenerateRandomToken returns the hex encoding of n random bytes.
	GenerateRandomToken(n int) (string, error)
	// GenerateOTP returns a six-digit numeric code drawn uniformly from
	// [100000, 999999].
	GenerateOTP() (string, error)
}
