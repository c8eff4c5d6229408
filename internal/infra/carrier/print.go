package carrier

import "fmt"

// Label paper sizes accepted by the carrier's print page.
const (
	PaperA5 = 1
	PaperA6 = 2
	PaperA7 = 100
)

// printPageURLs per environment. The print page lives outside the /v2 API.
const (
	printURLTest       = "https://partnerdev.viettelpost.vn/printing"
	printURLProduction = "https://partner.viettelpost.vn/printing"
)

// PrintURL builds the label print page URL for a one-time print code.
// Unknown paper sizes fall back to A6.
func PrintURL(environment, code string, paper int) string {
	base := printURLTest
	if environment == "production" {
		base = printURLProduction
	}

	switch paper {
	case PaperA5, PaperA6, PaperA7:
	default:
		paper = PaperA6
	}

	return fmt.Sprintf("%s?type=%d&bill=%s&showPostage=1", base, paper, code)
}
