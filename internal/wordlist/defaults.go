package wordlist

// defaultCommonSecrets is the fallback common-secrets list used when no
// external file is configured or readable.
var defaultCommonSecrets = []string{
	"password",
	"123456",
	"qwerty",
	"letmein",
	"welcome",
	"admin",
	"12345678",
	"123456789",
	"123123",
	"111111",
}
