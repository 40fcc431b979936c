package respond

// Disclaimer is appended to every response bundle, identical every time.
const Disclaimer = "IMPORTANT MEDICAL DISCLAIMER: This information is for educational purposes " +
	"only and is not intended to replace professional medical advice, diagnosis, or treatment. " +
	"Always seek the advice of your physician or other qualified health provider with any " +
	"questions you may have regarding a medical condition. Never disregard professional medical " +
	"advice or delay in seeking it because of something you have read here."

// EmergencyMessage is the fixed warning attached when the query contains an
// urgent-symptom keyword.
const EmergencyMessage = "MEDICAL EMERGENCY - If you are experiencing a medical emergency, " +
	"call 911 immediately or go to the nearest emergency room."

// NoResultsMessage is returned when the search found nothing.
const NoResultsMessage = "I couldn't find specific information about your query. Please try " +
	"rephrasing your question or consult with a healthcare professional."

// emergencyKeywords are matched as substrings of the lower-cased raw query.
// The check is independent of search results.
var emergencyKeywords = []string{
	"chest pain", "heart attack", "stroke", "difficulty breathing",
	"severe headache", "confusion", "unconscious", "bleeding",
	"severe pain", "emergency", "urgent",
}

var emergencyContacts = []string{
	"911",
	"Emergency Room",
	"Poison Control: 1-800-222-1222",
}

var rephraseSuggestions = []string{
	"Try using different medical terms",
	"Be more specific about symptoms",
	"Check spelling of medical terms",
	"Consult with a healthcare provider",
}

var genericRecommendations = []string{
	"Maintain a healthy lifestyle with regular exercise and balanced diet",
	"Follow up with your healthcare provider for proper diagnosis and treatment",
	"Keep track of your symptoms and their patterns",
	"Take medications as prescribed by your doctor",
}

var genericSeekHelp = []string{
	"Seek immediate medical attention if symptoms are severe or worsening",
	"Contact your healthcare provider if symptoms persist or interfere with daily activities",
	"Go to emergency room for life-threatening symptoms",
}

// evidenceSources is the fixed top-5 authority list; it is not derived from
// the matched entities.
var evidenceSources = []string{
	"American Medical Association (AMA)",
	"Centers for Disease Control and Prevention (CDC)",
	"World Health Organization (WHO)",
	"National Institutes of Health (NIH)",
	"Mayo Clinic",
}
