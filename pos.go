package wikrawler

// PartOfSpeech is a member of the closed part-of-speech catalog.
// The zero value is not a member; use IsValid to check.
type PartOfSpeech int

// Part-of-speech catalog, in declaration order.
const (
	Abbreviation PartOfSpeech = iota + 1
	Acronym
	Adjective
	Adverb
	Affix
	Article
	Conjunction
	Contraction
	Determiner
	Idiom
	Infix
	Initialism
	Interjection
	Letter
	Noun
	CardinalNumeral
	Particle
	Phrase
	Postposition
	Prefix
	Preposition
	Pronoun
	ProperNoun
	Proverb
	Suffix
	Symbol
	Verb
)

var posTable = [...]struct {
	code string
	name string
}{
	Abbreviation:    {"abbr", "Abbreviation"},
	Acronym:         {"acronym", "Acronym"},
	Adjective:       {"adj", "Adjective"},
	Adverb:          {"adv", "Adverb"},
	Affix:           {"affix", "Affix"},
	Article:         {"article", "Article"},
	Conjunction:     {"conj", "Conjunction"},
	Contraction:     {"contraction", "Contraction"},
	Determiner:      {"determiner", "Determiner"},
	Idiom:           {"idiom", "Idiom"},
	Infix:           {"infix", "Infix"},
	Initialism:      {"init", "Initialism"},
	Interjection:    {"int", "Interjection"},
	Letter:          {"letter", "Letter"},
	Noun:            {"n", "Noun"},
	CardinalNumeral: {"num", "Cardinal numeral"},
	Particle:        {"particle", "Particle"},
	Phrase:          {"phrase", "Phrase"},
	Postposition:    {"postposition", "Postposition"},
	Prefix:          {"prefix", "Prefix"},
	Preposition:     {"prep", "Preposition"},
	Pronoun:         {"pronoun", "Pronoun"},
	ProperNoun:      {"proper", "Proper noun"},
	Proverb:         {"proverb", "Proverb"},
	Suffix:          {"suffix", "Suffix"},
	Symbol:          {"symbol", "Symbol"},
	Verb:            {"v", "Verb"},
}

var (
	posByCode = make(map[string]PartOfSpeech, len(posTable))
	posByName = make(map[string]PartOfSpeech, len(posTable))
)

func init() {
	for p := Abbreviation; p <= Verb; p++ {
		posByCode[posTable[p].code] = p
		posByName[posTable[p].name] = p
	}
}

// IsValid reports whether p is a member of the catalog.
func (p PartOfSpeech) IsValid() bool {
	return p >= Abbreviation && p <= Verb
}

// Code returns the short code, e.g. "n". Empty for an invalid value.
func (p PartOfSpeech) Code() string {
	if !p.IsValid() {
		return ""
	}
	return posTable[p].code
}

// Name returns the full name, e.g. "Noun". Empty for an invalid value.
func (p PartOfSpeech) Name() string {
	if !p.IsValid() {
		return ""
	}
	return posTable[p].name
}

// String returns the full name.
func (p PartOfSpeech) String() string {
	return p.Name()
}

// PartOfSpeechByCode looks up a catalog member by its short code.
// The bool result is false if no member has that code.
func PartOfSpeechByCode(code string) (PartOfSpeech, bool) {
	p, ok := posByCode[code]
	return p, ok
}

// PartOfSpeechByName looks up a catalog member by its full name.
// The bool result is false if no member has that name.
func PartOfSpeechByName(name string) (PartOfSpeech, bool) {
	p, ok := posByName[name]
	return p, ok
}

// ParsePartOfSpeech resolves s as a code first, then as a name.
// Returns ENOTFOUND if neither matches.
func ParsePartOfSpeech(s string) (PartOfSpeech, error) {
	if p, ok := PartOfSpeechByCode(s); ok {
		return p, nil
	}
	if p, ok := PartOfSpeechByName(s); ok {
		return p, nil
	}
	return 0, Errorf(ENOTFOUND, "part of speech %q not found", s)
}

// PartsOfSpeech returns every catalog member in declaration order.
// The returned slice is a fresh copy on each call.
func PartsOfSpeech() []PartOfSpeech {
	all := make([]PartOfSpeech, 0, Verb)
	for p := Abbreviation; p <= Verb; p++ {
		all = append(all, p)
	}
	return all
}
