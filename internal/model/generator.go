package model

// RandomSpec configures random password generation.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type RandomSpec struct {
	Length           int    `json:"length"`
	Lowercase        *bool  `json:"lowercase"`
	Uppercase        *bool  `json:"uppercase"`
	Digits           *bool  `json:"digits"`
	Symbols          *bool  `json:"symbols"`
	ExcludeAmbiguous bool   `json:"exclude_ambiguous"`
	ExcludeChars     string `json:"exclude_chars"`
}

// MemorableSpec configures word-combination password generation.
type MemorableSpec struct {
	WordCount  int  `json:"word_count"`
	AddNumbers bool `json:"add_numbers"`
	AddSymbols bool `json:"add_symbols"`
	Capitalize bool `json:"capitalize"`
}

// PronounceableSpec configures syllable-based password generation.
type PronounceableSpec struct {
	Length     int  `json:"length"`
	AddNumbers bool `json:"add_numbers"`
	AddSymbols bool `json:"add_symbols"`
}

// PassphraseSpec configures passphrase generation.
type PassphraseSpec struct {
	WordCount       int    `json:"word_count"`
	Separator       string `json:"separator"`
	CapitalizeWords bool   `json:"capitalize_words"`
}

// BatchSpec configures batch generation: Count independent passwords, each
// drawn fresh from the same RandomSpec.
type BatchSpec struct {
	Count  int        `json:"count"`
	Random RandomSpec `json:"options"`
}

// Suggestion describes recommended generator settings for a purpose,
// together with a freshly generated example.
type Suggestion struct {
	Purpose  string `json:"purpose"`
	Length   int    `json:"length"`
	Pattern  string `json:"pattern"`
	Example  string `json:"example"`
	Strength string `json:"strength"`
}
