package contract

type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	// HashString applies a fast one-way digest, suitable for high-entropy
	// values like reset tokens and OTPs (not for passwords).
	HashString(s string) string
	CheckHash(s, hash string) bool
}
