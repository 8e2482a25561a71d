package catalog

import "github.com/jivana-app/jivana/internal/models"

// VocabularyWords is the built-in vocabulary table. Entries carry no ids;
// they are picked by value and never synced to the remote store.
var VocabularyWords = []models.Word{
	{Word: "Ahimsa", Phonetic: "/əˈhɪmsɑː/", Meaning: "Non-violence towards all living things.", Example: "Practicing Ahimsa is a core principle in many spiritual traditions."},
	{Word: "Dharma", Phonetic: "/ˈdɑːrmə/", Meaning: "Righteous conduct; one's duty or path.", Example: "Living in accordance with one's Dharma brings inner peace."},
	{Word: "Satya", Phonetic: "/ˈsʌtjə/", Meaning: "Truthfulness in thought, word, and deed.", Example: "Satya is considered a fundamental virtue in yoga philosophy."},
	{Word: "Santosha", Phonetic: "/sænˈtoʊʃə/", Meaning: "Contentment; finding joy in what one has.", Example: "Santosha encourages gratitude and reduces desire."},
	{Word: "Karuna", Phonetic: "/kəˈruːnə/", Meaning: "Compassion; active sympathy.", Example: "Developing Karuna for all beings is a path to enlightenment."},
	{Word: "Shanti", Phonetic: "/ˈʃɑːnti/", Meaning: "Peace; tranquility.", Example: "The meditation ended with a chant for Shanti."},
	{Word: "Maitri", Phonetic: "/ˈmaɪtriː/", Meaning: "Loving-kindness; friendliness.", Example: "Maitri is the practice of cultivating unconditional goodwill."},
	{Word: "Aparigraha", Phonetic: "/ˌæpərɪˈɡrɑːhə/", Meaning: "Non-possessiveness; non-greed.", Example: "Aparigraha encourages living simply and letting go of attachments."},
	{Word: "Svadhyaya", Phonetic: "/svɑːdˈjɑːjə/", Meaning: "Self-study; introspection.", Example: "Through Svadhyaya, one gains deeper understanding of oneself."},
	{Word: "Pranayama", Phonetic: "/ˌprɑːnəˈjɑːmə/", Meaning: "Breath control techniques in yoga.", Example: "Daily Pranayama can improve lung capacity and reduce stress."},
	{Word: "Equanimity", Phonetic: "/ˌiːkwəˈnɪmɪti/", Meaning: "Mental calmness, composure, and evenness of temper, especially in a difficult situation.", Example: "Maintaining equanimity is key to navigating life's challenges."},
	{Word: "Serendipity", Phonetic: "/ˌsɛrənˈdɪpɪti/", Meaning: "The occurrence and development of events by chance in a happy or beneficial way.", Example: "Finding that old book was a moment of pure serendipity."},
	{Word: "Ephemeral", Phonetic: "/ɪˈfɛmərəl/", Meaning: "Lasting for a very short time.", Example: "The beauty of a sunset is ephemeral, but its memory can last."},
	{Word: "Metta", Phonetic: "/ˈmɛtə/", Meaning: "Loving-kindness, benevolence.", Example: "Metta meditation cultivates feelings of goodwill towards all beings."},
	{Word: "Mudita", Phonetic: "/ˈmuːdɪtɑː/", Meaning: "Sympathetic joy; taking delight in others' happiness.", Example: "Practicing Mudita helps overcome envy and fosters connection."},
	{Word: "Upekkha", Phonetic: "/uːˈpɛkə/", Meaning: "Equanimity; non-attachment.", Example: "Upekkha is the ability to remain balanced amidst life's ups and downs."},
	{Word: "Vipassana", Phonetic: "/vɪˈpæsənə/", Meaning: "Insight meditation; seeing things as they truly are.", Example: "Vipassana meditation aims to purify the mind through self-observation."},
	{Word: "Samadhi", Phonetic: "/səˈmɑːdi/", Meaning: "Concentration; meditative absorption.", Example: "Samadhi is a state of intense concentration achieved through meditation."},
	{Word: "Nirvana", Phonetic: "/nɪrˈvɑːnə/", Meaning: "A state of perfect peace and freedom from suffering.", Example: "The ultimate goal in Buddhism is to achieve Nirvana."},
	{Word: "Bodhi", Phonetic: "/ˈboʊdi/", Meaning: "Enlightenment; awakening.", Example: "The Bodhi tree is where Buddha attained enlightenment."},
}
