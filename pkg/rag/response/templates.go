package response

import "strings"

// The six supported answer languages. Anything else falls back to the
// English templates while the caller's language string is echoed back
// untouched.
const (
	LangEnglish   = "english"
	LangHindi     = "hindi"
	LangTamil     = "tamil"
	LangTelugu    = "telugu"
	LangKannada   = "kannada"
	LangMalayalam = "malayalam"
)

// NormalizeLanguage lower-cases and trims a caller-supplied language name
// for table lookups. It does not validate; unknown names simply miss the
// tables and resolve to English.
func NormalizeLanguage(language string) string {
	return strings.ToLower(strings.TrimSpace(language))
}

// IsSupported reports whether the language has native templates.
func IsSupported(language string) bool {
	_, ok := languageTemplates[NormalizeLanguage(language)]
	return ok
}

// languageInstructions force single-language output. The directive is
// repeated inside the template itself because a single soft instruction
// is unreliable with some models.
var languageInstructions = map[string]string{
	LangHindi:     "IMPORTANT: You MUST respond ONLY in Hindi (हिंदी). Do not use English words.",
	LangTamil:     "IMPORTANT: You MUST respond ONLY in Tamil (தமிழ்). Do not use English words.",
	LangTelugu:    "IMPORTANT: You MUST respond ONLY in Telugu (తెలుగు). Do not use English words.",
	LangKannada:   "IMPORTANT: You MUST respond ONLY in Kannada (ಕನ್ನಡ). Do not use English words.",
	LangMalayalam: "IMPORTANT: You MUST respond ONLY in Malayalam (മലയാളം). Do not use English words.",
	LangEnglish:   "Respond in English.",
}

// languageTemplates carry {context} and {query} placeholders substituted
// at generation time.
var languageTemplates = map[string]string{
	LangHindi: `आपको केवल हिंदी में उत्तर देना है। Boss Wallah कोर्स की जानकारी के आधार पर जवाब दें।

कोर्स जानकारी:
{context}

प्रश्न: {query}

हिंदी में उत्तर:`,
	LangTamil: `நீங்கள் தமிழில் மட்டுமே பதிலளிக்க வேண்டும். Boss Wallah பாடநெறி தகவல்களின் அடிப்படையில் பதிலளிக்கவும்।

பாடநெறி தகவல்:
{context}

கேள்வி: {query}

தமிழில் பதில்:`,
	LangTelugu: `మీరు తెలుగులో మాత్రమే సమాధానం చెప్పాలి. Boss Wallah కోర్స్ సమాచారం ఆధారంగా సమాధానం ఇవ్వండి।

కోర్స్ సమాచారం:
{context}

ప్రశ్న: {query}

తెలుగులో సమాధానం:`,
	LangKannada: `ನೀವು ಕನ್ನಡದಲ್ಲಿ ಮಾತ್ರ ಉತ್ತರಿಸಬೇಕು. Boss Wallah ಕೋರ್ಸ್ ಮಾಹಿತಿಯ ಆಧಾರದ ಮೇಲೆ ಉತ್ತರಿಸಿ।

ಕೋರ್ಸ್ ಮಾಹಿತಿ:
{context}

ಪ್ರಶ್ನೆ: {query}

ಕನ್ನಡದಲ್ಲಿ ಉತ್ತರ:`,
	LangMalayalam: `നിങ്ങൾ മലയാളത്തിൽ മാത്രം ഉത്തരം നൽകണം. Boss Wallah കോഴ്‌സ് വിവരങ്ങളുടെ അടിസ്ഥാനത്തിൽ ഉത്തരം നൽകുക.

കോഴ്‌സ് വിവരങ്ങൾ:
{context}

ചോദ്യം: {query}

മലയാളത്തിൽ ഉത്തര:`,
	LangEnglish: `Answer in English based on the Boss Wallah course information.

Course Information:
{context}

Question: {query}

Answer:`,
}

// resolveTemplates returns the instruction and template for a language,
// falling back to English for anything unrecognized.
func resolveTemplates(language string) (instruction, template string) {
	key := NormalizeLanguage(language)

	instruction, ok := languageInstructions[key]
	if !ok {
		instruction = languageInstructions[LangEnglish]
	}

	template, ok = languageTemplates[key]
	if !ok {
		template = languageTemplates[LangEnglish]
	}
	return instruction, template
}
