package service

// CodeGenerator defines the interface for producing short numeric secrets,
// used for the e-mail verification codes.
type CodeGenerator interface {
	// NumericCode returns a string of exactly length decimal digits.
	NumericCode(length int) (string, error)
}
