package rds

// rdsPTYNames and rbdsPTYNames hold the Programme Type strings for the two
// PTY code tables (spec.md §4.2, §6). Index is the raw 5-bit PTY value.
var rdsPTYNames = [32]string{
	"None", "News", "Affairs", "Info", "Sport", "Education", "Drama",
	"Culture", "Science", "Varied Speech", "Pop Music",
	"Rock Music", "Easy Listening", "Light Classics M",
	"Serious Classics", "Other Music", "Weather", "Finance",
	"Children", "Social Affairs", "Religion", "Phone In",
	"Travel & Touring", "Leisure & Hobby", "Jazz Music",
	"Country Music", "National Music", "Oldies Music", "Folk Music",
	"Documentary", "Alarm Test", "Alarm!",
}

var rbdsPTYNames = [32]string{
	"None", "News", "Information", "Sports", "Talk", "Rock",
	"Classic Rock", "Adult Hits", "Soft Rock", "Top 40", "Country",
	"Oldies", "Soft", "Nostalgia", "Jazz", "Classical",
	"R&B", "Soft R&B", "Foreign Language", "Religious Music",
	"Religious Talk", "Personality", "Public", "College",
	"Spanish Talk", "Spanish Music", "Hip-Hop", "Unassigned",
	"Unassigned", "Weather", "Emergency Test", "Emergency",
}

// europeanCountryNames is the ECC-region-E country lookup (spec.md §4.2).
// The standard leaves some entries undefined; an empty string there means
// "no country assigned" (e4's dash is the standard's own placeholder).
var europeanCountryNames = [5][16]string{
	{
		"", "DE", "DZ", "AD", "IL", "IT", "BE", "RU", "PS", "AL",
		"AT", "HU", "MT", "DE", "", "EG",
	},
	{
		"", "GR", "CY", "SM", "CH", "JO", "FI", "LU", "BG", "DK",
		"GI", "IQ", "GB", "LY", "RO", "FR",
	},
	{
		"", "MA", "CZ", "PL", "VA", "SK", "SY", "TN", "", "LI",
		"IS", "MC", "LT", "RS", "ES", "NO",
	},
	{
		"", "ME", "IE", "TR", "MK", "", "", "", "NL", "LV",
		"LB", "AZ", "HR", "KZ", "SE", "BY",
	},
	{
		"", "MD", "EE", "KG", "", "", "UA", "-", "PT", "SI",
		"AM", "", "GE", "", "", "BA",
	},
}

// languageNames is the RDS language code table (spec.md §4.4). Entries left
// blank are reserved/undefined and map to "Unknown".
var languageNames = [128]string{
	"Unknown", "Albanian", "Breton", "Catalan",
	"Croatian", "Welsh", "Czech", "Danish",
	"German", "English", "Spanish", "Esperanto",
	"Estonian", "Basque", "Faroese", "French",
	"Frisian", "Irish", "Gaelic", "Galician",
	"Icelandic", "Italian", "Lappish", "Latin",
	"Latvian", "Luxembourgian", "Lithuanian", "Hungarian",
	"Maltese", "Dutch", "Norwegian", "Occitan",
	"Polish", "Portuguese", "Romanian", "Ramansh",
	"Serbian", "Slovak", "Slovene", "Finnish",
	"Swedish", "Turkish", "Flemish", "Walloon",
	"", "", "", "", "", "", "", "",
	"", "", "", "", "", "", "", "",
	"", "", "", "", "", "", "", "",
	"", "Zulu", "Vietnamese", "Uzbek",
	"Urdu", "Ukrainian", "Thai", "Telugu",
	"Tatar", "Tamil", "Tadzhik", "Swahili",
	"Sranan Tongo", "Somali", "Sinhalese", "Shona",
	"Serbo-Croat", "Ruthenian", "Russian", "Quechua",
	"Pushtu", "Punjabi", "Persian", "Papamiento",
	"Oriya", "Nepali", "Ndebele", "Marathi",
	"Moldavian", "Malaysian", "Malagasay", "Macedonian",
	"Laotian", "Korean", "Khmer", "Kazahkh",
	"Kannada", "Japanese", "Indonesian", "Hindi",
	"Hebrew", "Hausa", "Gurani", "Gujurati",
	"Greek", "Georgian", "Fulani", "Dani",
	"Churash", "Chinese", "Burmese", "Bulgarian",
	"Bengali", "Belorussian", "Bambora", "Azerbaijani",
	"Assamese", "Armenian", "Arabic", "Amharic",
}

// coverageNames is the PI area coverage code table (spec.md §3).
var coverageNames = [16]string{
	"Local", "International", "National", "Supra-Regional",
	"Regional 1", "Regional 2", "Regional 3", "Regional 4",
	"Regional 5", "Regional 6", "Regional 7", "Regional 8",
	"Regional 9", "Regional 10", "Regional 11", "Regional 12",
}

// PTYString resolves the current PTY code to a human-readable programme
// type name, using the RDS or RBDS table depending on the decoder's
// variant. ok is false if no PTY has been validated yet.
func (d *Decoder) PTYString() (string, bool) {
	if !d.ValidFields.Has(FieldPTY) {
		return "", false
	}
	if d.variant == RBDS {
		return rbdsPTYNames[d.PTY&0x1f], true
	}
	return rdsPTYNames[d.PTY&0x1f], true
}

// CountryString resolves the decoder's ECC and PI country code to an
// ISO 3166 alpha-2 country code. Only European ECC region E0-E4 is
// currently tabulated (spec.md §1 non-goals); anything else, including an
// unvalidated ECC, reports "Unknown".
func (d *Decoder) CountryString() string {
	if !d.ValidFields.Has(FieldECC) {
		return "Unknown"
	}
	eccHigh := d.ECC >> 4
	eccLow := d.ECC & 0x0f
	countryCode := d.PI >> 12

	if eccHigh != 0x0e || eccLow > 0x04 {
		return "Unknown"
	}
	name := europeanCountryNames[eccLow][countryCode]
	if name == "" {
		return "Unknown"
	}
	return name
}

// LanguageString resolves the decoder's language code field to a language
// name.
func (d *Decoder) LanguageString() string {
	if !d.ValidFields.Has(FieldLC) {
		return "Unknown"
	}
	if int(d.LC) >= len(languageNames) {
		return "Unknown"
	}
	name := languageNames[d.LC]
	if name == "" {
		return "Unknown"
	}
	return name
}

// CoverageString resolves the area coverage code carried in the PI to its
// descriptive name.
func (d *Decoder) CoverageString() string {
	coverage := (d.PI >> 8) & 0x0f
	return coverageNames[coverage]
}
