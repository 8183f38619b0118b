// Package i18n は表示ラベルの(キー, 言語)検索を提供する。
//
// 対応言語は英語とヒンディー語の2つ。未知のキーはエラーにせず、
// キー文字列そのものを可視のフォールバックとして返す。
package i18n

import "github.com/hitoshi/saathi/internal/model"

// T は指定言語のラベルを返す。
// キーが見つからない場合はキー自身を返す。未知の言語は英語にフォールバックする。
func T(key string, lang model.Language) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[model.LanguageEnglish]
	}

	if label, ok := table[key]; ok {
		return label
	}
	return key
}

// Table は指定言語の全ラベルのコピーを返す。
// クライアントが一括取得してキャッシュする用途向け。
func Table(lang model.Language) map[string]string {
	table, ok := translations[lang]
	if !ok {
		table = translations[model.LanguageEnglish]
	}

	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

// translations は全表示ラベルのテーブル。
// キー集合は両言語で一致させること。
var translations = map[model.Language]map[string]string{
	model.LanguageEnglish: {
		// Landing
		"heroHeadline":   "Simple steps lead to compounding results",
		"getStarted":     "Get Started Now",
		"changeLanguage": "Change to Hindi",

		// Auth
		"login":        "Login",
		"signUp":       "Sign Up",
		"mobileNumber": "Mobile Number",
		"sendOTP":      "Send OTP",
		"enterOTP":     "Enter OTP",
		"notRobot":     "I'm not a robot",
		"signUpGoogle": "Sign up with Google",
		"signUpEmail":  "Sign up with Email",
		"username":     "Username",
		"password":     "Password",

		// Role selection
		"selectRole": "Select Your Role",
		"patient":    "I am a Patient",
		"caretaker":  "I am a Caretaker",

		// Navigation
		"homeMedications": "Home & Medications",
		"symptoms":        "Symptoms",
		"aiAssistant":     "AI Assistant",
		"addCaretaker":    "Add Caretaker",

		// Medications
		"todaysMedications": "Today's Medications",
		"addNewMedication":  "Add New Medication",
		"medicationName":    "Medication Name",
		"dosage":            "Dosage",
		"frequency":         "Frequency",
		"reminderTime":      "Reminder Time",
		"instructions":      "Instructions (Optional)",
		"takeIn":            "Take in",
		"hours":             "hours",
		"minutes":           "minutes",
		"taken":             "Taken",
		"markTaken":         "Mark as Taken",

		// Symptoms
		"dailySymptomTracker": "Daily Symptom Tracker",
		"logSymptoms":         "Log your symptoms daily",
		"symptom":             "Symptom",
		"severityLevel":       "Severity Level",
		"mild":                "Mild",
		"moderate":            "Moderate",
		"high":                "High",
		"severe":              "Severe",
		"describeSymptom":     "Describe Your Symptom",
		"possibleTriggers":    "Possible Triggers",
		"recentSymptoms":      "Recent Symptoms",

		// Caretakers
		"availableCaretakers": "Available Caretakers",
		"addOwnCaretaker":     "Add Your Own Caretaker",
		"experience":          "Experience",
		"rating":              "Rating",
		"specialization":      "Specialization",
		"selectCaretaker":     "Select Caretaker",
		"caretakerName":       "Caretaker Name",
		"caretakerPhone":      "Caretaker Phone",
		"addCaretakerBtn":     "Add Caretaker",

		// Popups
		"requestingHelp":  "Requesting Help",
		"caretakerCalled": "The caretaker is being called. Please have patience.",
		"close":           "Close",

		// Assistant
		"aiDisclaimer": "Disclaimer: This tool is for informational purposes only and is not a substitute for professional medical advice. Always seek professional advice from a doctor before diagnosing any disease on your own.",
		"askQuestion":  "Ask a question about your health...",
		"send":         "Send",
	},
	model.LanguageHindi: {
		// Landing
		"heroHeadline":   "सरल कदम बड़े परिणाम लाते हैं",
		"getStarted":     "शुरू करें",
		"changeLanguage": "Change to English",

		// Auth
		"login":        "लॉगिन",
		"signUp":       "साइन अप",
		"mobileNumber": "मोबाइल नंबर",
		"sendOTP":      "ओटीपी भेजें",
		"enterOTP":     "ओटीपी दर्ज करें",
		"notRobot":     "मैं रोबोट नहीं हूं",
		"signUpGoogle": "गूगल से साइन अप करें",
		"signUpEmail":  "ईमेल से साइन अप करें",
		"username":     "उपयोगकर्ता नाम",
		"password":     "पासवर्ड",

		// Role selection
		"selectRole": "अपनी भूमिका चुनें",
		"patient":    "मैं एक मरीज़ हूं",
		"caretaker":  "मैं एक देखभालकर्ता हूं",

		// Navigation
		"homeMedications": "होम और दवाएं",
		"symptoms":        "लक्षण",
		"aiAssistant":     "एआई सहायक",
		"addCaretaker":    "देखभालकर्ता जोड़ें",

		// Medications
		"todaysMedications": "आज की दवाएं",
		"addNewMedication":  "नई दवा जोड़ें",
		"medicationName":    "दवा का नाम",
		"dosage":            "खुराक",
		"frequency":         "आवृत्ति",
		"reminderTime":      "रिमाइंडर समय",
		"instructions":      "निर्देश (वैकल्पिक)",
		"takeIn":            "लें",
		"hours":             "घंटे में",
		"minutes":           "मिनट में",
		"taken":             "लिया गया",
		"markTaken":         "लिया गया के रूप में चिह्नित करें",

		// Symptoms
		"dailySymptomTracker": "दैनिक लक्षण ट्रैकर",
		"logSymptoms":         "अपने लक्षणों को दैनिक रूप से दर्ज करें",
		"symptom":             "लक्षण",
		"severityLevel":       "गंभीरता स्तर",
		"mild":                "हल्का",
		"moderate":            "मध्यम",
		"high":                "उच्च",
		"severe":              "गंभीर",
		"describeSymptom":     "अपने लक्षण का वर्णन करें",
		"possibleTriggers":    "संभावित कारण",
		"recentSymptoms":      "हाल के लक्षण",

		// Caretakers
		"availableCaretakers": "उपलब्ध देखभालकर्ता",
		"addOwnCaretaker":     "अपना देखभालकर्ता जोड़ें",
		"experience":          "अनुभव",
		"rating":              "रेटिंग",
		"specialization":      "विशेषज्ञता",
		"selectCaretaker":     "देखभालकर्ता चुनें",
		"caretakerName":       "देखभालकर्ता का नाम",
		"caretakerPhone":      "देखभालकर्ता का फोन",
		"addCaretakerBtn":     "देखभालकर्ता जोड़ें",

		// Popups
		"requestingHelp":  "सहायता का अनुरोध",
		"caretakerCalled": "देखभालकर्ता को बुलाया जा रहा है। कृपया धैर्य रखें।",
		"close":           "बंद करें",

		// Assistant
		"aiDisclaimer": "अस्वीकरण: यह उपकरण केवल सूचनात्मक उद्देश्यों के लिए है और पेशेवर चिकित्सा सलाह का विकल्प नहीं है। किसी भी बीमारी का स्वयं निदान करने से पहले हमेशा डॉक्टर से पेशेवर सलाह लें।",
		"askQuestion":  "अपने स्वास्थ्य के बारे में प्रश्न पूछें...",
		"send":         "भेजें",
	},
}
