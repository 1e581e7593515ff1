package domain

// AgeBracket is one of the fixed age categories offered during intake.
// Code is the machine-stable callback identifier, Range the stored value,
// Label the button text shown to the user.
type AgeBracket struct {
	Code  string
	Range string
	Label string
}

// AgeBrackets is the canonical ordered set of offered brackets.
// The set is fixed; it is not user-extensible.
var AgeBrackets = []AgeBracket{
	{Code: "age_6_8", Range: "6-8", Label: "6-8 лет"},
	{Code: "age_9_11", Range: "9-11", Label: "9-11 лет"},
	{Code: "age_12_14", Range: "12-14", Label: "12-14 лет"},
}

// BracketByCode resolves a callback code to its bracket. The second return
// is false for any code outside the fixed set.
func BracketByCode(code string) (AgeBracket, bool) {
	for _, b := range AgeBrackets {
		if b.Code == code {
			return b, true
		}
	}
	return AgeBracket{}, false
}
