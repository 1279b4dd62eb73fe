package types

// DefaultVersion is the fallback version when AppContext is nil
const DefaultVersion = "dev"

// AppContext carries application-wide state bound through kong into
// every command's Run method.
type AppContext struct {
	Version string
}
