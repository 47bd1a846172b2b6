package contract

import "time"

// IConfigProvider exposes the configuration values usecases depend on.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetAccessTokenExpiry() time.Duration
	GetResetOTPExpiry() time.Duration
	GetResetTokenExpiry() time.Duration
	GetCurrency() string
	IsProduction() bool
}
