package entity

// SocialProvider identifies the external identity provider behind a social
// registration. The zero value means a regular password account.
type SocialProvider string

const (
	SocialNone     SocialProvider = ""
	SocialGoogle   SocialProvider = "google"
	SocialFacebook SocialProvider = "facebook"
	SocialApple    SocialProvider = "apple"
)

// providerSymbols maps the single-letter wire symbols to providers.
var providerSymbols = map[string]SocialProvider{
	"g": SocialGoogle,
	"f": SocialFacebook,
	"a": SocialApple,
}

// SocialProviderFromSymbol resolves the single-letter wire symbol used at
// registration ("g", "f" or "a"). The second return is false for any other
// input, including the empty string.
func SocialProviderFromSymbol(symbol string) (SocialProvider, bool) {
	provider, ok := providerSymbols[symbol]

	return provider, ok
}

// Symbol returns the single-letter wire symbol, or "" for SocialNone.
func (p SocialProvider) Symbol() string {
	for symbol, provider := range providerSymbols {
		if provider == p {
			return symbol
		}
	}

	return ""
}

// IsSocial reports whether the account came from an identity provider.
func (p SocialProvider) IsSocial() bool {
	return p != SocialNone
}

func (p SocialProvider) String() string {
	return string(p)
}
