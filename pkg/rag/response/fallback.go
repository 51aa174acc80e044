package response

import "strings"

// Fallback sub-response categories, detected by keyword matching on the
// lowercased query, in priority order.
const (
	categoryLocation = "location"
	categoryExternal = "external"
	categoryGeneral  = "general"
)

var locationKeywords = []string{"store", "shop", "where to buy", "location", "address"}
var externalKeywords = []string{"weather", "news", "stock price", "current events"}

// Fallback returns the pre-written "no information" answer for a query.
// Pure and total: no model call, no I/O, never an empty string. Unknown
// languages get the English table while the caller keeps their language
// string.
func Fallback(query, language string) string {
	table, ok := fallbackResponses[NormalizeLanguage(language)]
	if !ok {
		table = fallbackResponses[LangEnglish]
	}
	return table[categorize(query)]
}

func categorize(query string) string {
	lowered := strings.ToLower(query)
	for _, keyword := range locationKeywords {
		if strings.Contains(lowered, keyword) {
			return categoryLocation
		}
	}
	for _, keyword := range externalKeywords {
		if strings.Contains(lowered, keyword) {
			return categoryExternal
		}
	}
	return categoryGeneral
}

var fallbackResponses = map[string]map[string]string{
	LangEnglish: {
		categoryLocation: `I can only provide information about Boss Wallah courses from our dataset. For specific store locations or external services, I recommend:

1. Contacting local suppliers in your area
2. Checking with relevant government departments
3. Consulting with our course mentors who may have local recommendations

However, I'd be happy to help you with information about our related courses that might guide you on what to look for!`,
		categoryExternal: `I'm specifically designed to help with Boss Wallah course information. I can't provide information about topics outside our course dataset.

Is there anything about our courses I can help you with instead?`,
		categoryGeneral: `I apologize, but I don't have relevant information about that in our Boss Wallah course dataset.

I can help you with:
- Course details and descriptions
- Target audiences for different courses
- Available languages for courses
- Recommendations based on your interests or background

Is there a specific course topic you'd like to know more about?`,
	},
	LangHindi: {
		categoryLocation: `मैं केवल हमारे डेटासेट से Boss Wallah कोर्स की जानकारी प्रदान कर सकता हूं। विशिष्ट स्टोर स्थानों या बाहरी सेवाओं के लिए, मैं सुझाता हूं:

1. अपने क्षेत्र के स्थानीय आपूर्तिकर्ताओं से संपर्क करें
2. संबंधित सरकारी विभागों से जांच करें
3. हमारे कोर्स मेंटर्स से सलाह लें जो स्थानीय सप्लायर की सिफारिश कर सकते हैं

हालांकि, मैं आपको हमारे संबंधित कोर्स की जानकारी देकर मदद कर सकता हूं!`,
		categoryExternal: `मैं विशेष रूप से Boss Wallah कोर्स की जानकारी के लिए डिज़ाइन किया गया हूं। मैं हमारे कोर्स डेटासेट के बाहर की जानकारी प्रदान नहीं कर सकता।

क्या आपको हमारे कोर्स के बारे में कुछ और जानना है?`,
		categoryGeneral: `माफ करें, हमारे Boss Wallah कोर्स डेटासेट में इसकी जानकारी नहीं है।

मैं इन चीजों में आपकी मदद कर सकता हूं:
- कोर्स विवरण और जानकारी
- विभिन्न कोर्स के लक्षित दर्शक
- कोर्स की उपलब्ध भाषाएं
- आपकी रुचि के आधार पर सिफारिशें

कोई विशिष्ट कोर्स टॉपिक के बारे में जानना चाहते हैं?`,
	},
	LangMalayalam: {
		categoryLocation: `ഞാൻ ഞങ്ങളുടെ ഡാറ്റാസെറ്റിൽ നിന്നുള്ള Boss Wallah കോഴ്‌സുകളെ കുറിച്ചുള്ള വിവരങ്ങൾ മാത്രമേ നൽകാൻ കഴിയൂ. നിർദ്ദിഷ്ട സ്റ്റോർ ലൊക്കേഷനുകൾ അല്ലെങ്കിൽ ബാഹ്യ സേവനങ്ങൾക്കായി ഞാൻ ശുപാർശ ചെയ്യുന്നു:

1. നിങ്ങളുടെ പ്രദേശത്തെ പ്രാദേശിക വിതരണക്കാരുമായി ബന്ധപ്പെടുക
2. അനുബന്ധ സർക്കാർ വകുപ്പുകളുമായി പരിശോധിക്കുക
3. പ്രാദേശിക ശുപാർശകൾ ഉണ്ടായിരിക്കാവുന്ന ഞങ്ങളുടെ കോഴ്‌സ് മെന്റർമാരുമായി കൂടിയാലോചിക്കുക

എന്നിരുന്നാലും, എന്തെല്ലാം തിരയണമെന്ന് നിങ്ങളെ സഹായിച്ചേക്കാവുന്ന ഞങ്ങളുടെ അനുബന്ധ കോഴ്‌സുകളെ കുറിച്ചുള്ള വിവരങ്ങൾ നൽകാൻ ഞാൻ സന്തോഷിക്കുന്നു!`,
		categoryExternal: `ഞാൻ പ്രത്യേകമായി Boss Wallah കോഴ്‌സ് വിവരങ്ങൾ സഹായിക്കാൻ രൂപകൽപ്പന ചെയ്തിട്ടുള്ളതാണ്. ഞങ്ങളുടെ കോഴ്‌സ് ഡാറ്റാസെറ്റിന് പുറത്തുള്ള വിഷയങ്ങളെ കുറിച്ചുള്ള വിവരങ്ങൾ എനിക്ക് നൽകാൻ കഴിയില്ല.

പകരം ഞങ്ങളുടെ കോഴ്‌സുകളെ കുറിച്ച് എന്തെങ്കിലും സഹായിക്കാൻ കഴിയുമോ?`,
		categoryGeneral: `ക്ഷമിക്കുക, ഞങ്ങളുടെ Boss Wallah കോഴ്‌സ് ഡാറ്റാസെറ്റിൽ അതിനെ കുറിച്ചുള്ള പ്രസക്ത വിവരങ്ങൾ എനിക്കില്ല.

എനിക്ക് നിങ്ങളെ സഹായിക്കാൻ കഴിയും:
- കോഴ്‌സിന്റെ വിശദാംശങ്ങളും വിവരണങ്ങളും
- വിവിധ കോഴ്‌സുകളുടെ ടാർഗെറ്റ് പ്രേക്ഷകർ
- കോഴ്‌സുകൾക്കായി ലഭ്യമായ ഭാഷകൾ
- നിങ്ങളുടെ താൽപ്പര്യങ്ങളോ പശ്ചാത്തലമോ അടിസ്ഥാനമാക്കിയുള്ള ശുപാർശകൾ

നിങ്ങൾക്ക് അറിയാൻ താൽപ്പര്യമുള്ള ഏതെങ്കിലും നിർദ്ദിഷ്ട കോഴ്‌സ് വിഷയം ഉണ്ടോ?`,
	},
	LangKannada: {
		categoryLocation: `ನಾನು ನಮ್ಮ ಡೇಟಾಸೆಟ್‌ನಿಂದ Boss Wallah ಕೋರ್ಸ್‌ಗಳ ಬಗ್ಗೆ ಮಾತ್ರ ಮಾಹಿತಿ ನೀಡಬಲ್ಲೆ. ನಿರ್ದಿಷ್ಟ ಅಂಗಡಿ ಸ್ಥಳಗಳು ಅಥವಾ ಬಾಹ್ಯ ಸೇವೆಗಳಿಗಾಗಿ, ನಾನು ಶಿಫಾರಸು ಮಾಡುತ್ತೇನೆ:

1. ನಿಮ್ಮ ಪ್ರದೇಶದ ಸ್ಥಳೀಯ ಪೂರೈಕೆದಾರರನ್ನು ಸಂಪರ್ಕಿಸಿ
2. ಸಂಬಂಧಿತ ಸರ್ಕಾರಿ ಇಲಾಖೆಗಳೊಂದಿಗೆ ಪರಿಶೀಲಿಸಿ
3. ಸ್ಥಳೀಯ ಶಿಫಾರಸುಗಳನ್ನು ಹೊಂದಿರುವ ನಮ್ಮ ಕೋರ್ಸ್ ಮೆಂಟರ್‌ಗಳೊಂದಿಗೆ ಸಲಹೆ ಮಾಡಿ

ಆದಾಗ್ಯೂ, ನೀವು ಏನನ್ನು ಹುಡುಕಬೇಕೆಂದು ನಿಮಗೆ ಮಾರ್ಗದರ್ಶನ ನೀಡುವ ನಮ್ಮ ಸಂಬಂಧಿತ ಕೋರ್ಸ್‌ಗಳ ಬಗ್ಗೆ ಮಾಹಿತಿಯೊಂದಿಗೆ ನಿಮಗೆ ಸಹಾಯ ಮಾಡಲು ನಾನು ಸಂತೋಷಪಡುತ್ತೇನೆ!`,
		categoryExternal: `ನಾನು ನಿರ್ದಿಷ್ಟವಾಗಿ Boss Wallah ಕೋರ್ಸ್ ಮಾಹಿತಿಗೆ ಸಹಾಯ ಮಾಡಲು ವಿನ್ಯಾಸಗೊಳಿಸಲಾಗಿದೆ. ನಮ್ಮ ಕೋರ್ಸ್ ಡೇಟಾಸೆಟ್‌ನ ಹೊರಗಿನ ವಿಷಯಗಳ ಬಗ್ಗೆ ಮಾಹಿತಿ ನೀಡಲು ನನಗೆ ಸಾಧ್ಯವಿಲ್ಲ.

ಬದಲಿಗೆ ನಮ್ಮ ಕೋರ್ಸ್‌ಗಳ ಬಗ್ಗೆ ನಿಮಗೆ ಸಹಾಯ ಮಾಡಬಹುದಾದ ಏನಾದರೂ ಇದೆಯೇ?`,
		categoryGeneral: `ಕ್ಷಮಿಸಿ, ನಮ್ಮ Boss Wallah ಕೋರ್ಸ್ ಡೇಟಾಸೆಟ್‌ನಲ್ಲಿ ಅದರ ಬಗ್ಗೆ ಸಂಬಂಧಿತ ಮಾಹಿತಿ ನನ್ನ ಬಳಿ ಇಲ್ಲ.

ನಾನು ನಿಮಗೆ ಸಹಾಯ ಮಾಡಬಲ್ಲೆ:
- ಕೋರ್ಸ್ ವಿವರಗಳು ಮತ್ತು ವಿವರಣೆಗಳು
- ವಿವಿಧ ಕೋರ್ಸ್‌ಗಳ ಗುರಿ ಪ್ರೇಕ್ಷಕರು
- ಕೋರ್ಸ್‌ಗಳಿಗೆ ಲಭ್ಯವಿರುವ ಭಾಷೆಗಳು
- ನಿಮ್ಮ ಆಸಕ್ತಿಗಳು ಅಥವಾ ಹಿನ್ನೆಲೆಯ ಆಧಾರದ ಮೇಲೆ ಶಿಫಾರಸುಗಳು

ನೀವು ಇನ್ನಷ್ಟು ತಿಳಿದುಕೊಳ್ಳಲು ಬಯಸುವ ಯಾವುದೇ ನಿರ್ದಿಷ್ಟ ಕೋರ್ಸ್ ವಿಷಯ ಇದೆಯೇ?`,
	},
	LangTamil: {
		categoryLocation: `நாங்கள் எங்கள் டேட்டாசெட்டில் இருந்து Boss Wallah பாடநெறிகளைப் பற்றிய தகவல்களை மட்டுமே வழங்க முடியும். குறிப்பிட்ட கடை இடங்கள் அல்லது வெளிப்புற சேவைகளுக்கு, நான் பரிந்துரைக்கிறேன்:

1. உங்கள் பகுதியில் உள்ள உள்ளூர் சப்ளையர்களைத் தொடர்பு கொள்ளுங்கள்
2. தொடர்புடைய அரசாங்க துறைகளுடன் சரிபார்க்கவும்
3. உள்ளூர் பரிந்துரைகள் இருக்கக்கூடிய எங்கள் பாடநெறி வழிகாட்டிகளுடன் ஆலோசிக்கவும்

இருப்பினும், நீங்கள் எதைத் தேட வேண்டும் என்பதற்கு வழிகாட்டக்கூடிய எங்கள் தொடர்புடைய பாடநெறிகளைப் பற்றிய தகவல்களுடன் உங்களுக்கு உதவ நான் மகிழ்ச்சியடைவேன்!`,
		categoryExternal: `நான் குறிப்பாக Boss Wallah பாடநெறி தகவலுக்கு உதவ வடிவமைக்கப்பட்டுள்ளேன். எங்கள் பாடநெறி டேட்டாசெட்டுக்கு வெளியே உள்ள தலைப்புகளைப் பற்றிய தகவல்களை என்னால் வழங்க முடியாது.

மாறாக எங்கள் பாடநெறிகளைப் பற்றி நான் உங்களுக்கு எதையாவது உதவ முடியுமா?`,
		categoryGeneral: `மன்னிக்கவும், எங்கள் Boss Wallah பாடநெறி டேட்டாசெட்டில் அதைப் பற்றிய தொடர்புடைய தகவல்கள் என்னிடம் இல்லை.

என்னால் உங்களுக்கு உதவ முடியும்:
- பாடநெறி விவரங்கள் மற்றும் விளக்கங்கள்
- பல்வேறு பாடநெறிகளுக்கான இலக்கு பார்வையாளர்கள்
- பாடநெறிகளுக்கு கிடைக்கும் மொழிகள்
- உங்கள் ஆர்வங்கள் அல்லது பின்னணியின் அடிப்படையில் பரிந்துரைகள்

நீங்கள் மேலும் அறிய விரும்பும் ஏதேனும் குறிப்பிட்ட பாடநெறி தலைப்பு உள்ளதா?`,
	},
	LangTelugu: {
		categoryLocation: `నేను మా డేటాసెట్ నుండి Boss Wallah కోర్సుల గురించి మాత్రమే సమాచారం అందించగలను. నిర్దిష్ట స్టోర్ లొకేషన్లు లేదా బాహ్య సేవల కోసం, నేను సిఫార్సు చేస్తున్నాను:

1. మీ ప్రాంతంలోని స్థానిక సప్లైయర్లను సంప్రదించండి
2. సంబంధిత ప్రభుత్వ విభాగాలతో తనిఖీ చేయండి
3. స్థానిక సిఫార్సులను కలిగి ఉండే మా కోర్స్ మెంటర్లతో సంప్రదించండి

అయితే, మీరు దేని కోసం వెతకాలో మీకు మార్గదర్శనం చేసే మా సంబంధిత కోర్సుల గురించిన సమాచారంతో మీకు సహాయం చేయడానికి నేను సంతోషిస్తాను!`,
		categoryExternal: `నేను ప్రత్యేకంగా Boss Wallah కోర్స్ సమాచారానికి సహాయం చేయడానికి రూపొందించబడ్డాను. మా కోర్స్ డేటాసెట్ వెలుపలి అంశాల గురించి సమాచారం అందించలేను.

బదులుగా మా కోర్సుల గురించి నేను మీకు ఏదైనా సహాయం చేయగలనా?`,
		categoryGeneral: `క్షమించండి, మా Boss Wallah కోర్స్ డేటాసెట్లో దాని గురించి సంబంధిత సమాచారం నా దగ్గర లేదు.

నేను మీకు సహాయం చేయగలను:
- కోర్స్ వివరాలు మరియు వర్ణనలు
- వివిధ కోర్సుల లక్ష్య ప్రేక్షకులు
- కోర్సులకు అందుబాటులో ఉన్న భాషలు
- మీ ఆసక్తులు లేదా నేపథ్యం ఆధారంగా సిఫార్సులు

మీరు మరింత తెలుసుకోవాలని అనుకునే ఏదైనా నిర్దిష్ట కోర్స్ అంశం ఉందా?`,
	},
}
