// Package catalog holds the built-in content tables: wisdom quotes,
// vegetarian diet recommendations, vocabulary words, and lifestyle tips.
// Catalog entries are immutable and never sent to the remote store.
package catalog

import "github.com/jivana-app/jivana/internal/models"

// WisdomQuotes is the built-in quote table.
var WisdomQuotes = []models.WisdomQuote{
	{Quote: "The mind is everything. What you think you become.", Author: "Buddha"},
	{Quote: "You are what your deep driving desire is. As your desire is, so is your will. As your will is, so is your deed. As your deed is, so is your destiny.", Author: "Brihadaranyaka Upanishad"},
	{Quote: "Change your thoughts and you change your world.", Author: "Norman Vincent Peale"},
	{Quote: "The only true wisdom is in knowing you know nothing.", Author: "Socrates"},
	{Quote: "Happiness is not something ready made. It comes from your own actions.", Author: "Dalai Lama XIV"},
	{Quote: "Do not dwell in the past, do not dream of the future, concentrate the mind on the present moment.", Author: "Buddha"},
	{Quote: "It is better to live your own destiny imperfectly than to live an imitation of somebody else's life perfectly.", Author: "Bhagavad Gita"},
	{Quote: "When you are inspired by some great purpose, some extraordinary project, all your thoughts break their bonds.", Author: "Patanjali"},
	{Quote: "The unexamined life is not worth living.", Author: "Socrates"},
	{Quote: "The quieter you become, the more you can hear.", Author: "Ram Dass"},
	{Quote: "The journey of a thousand miles begins with a single step.", Author: "Lao Tzu"},
	{Quote: "What we achieve inwardly will change outer reality.", Author: "Plutarch"},
	{Quote: "The best way to find yourself is to lose yourself in the service of others.", Author: "Mahatma Gandhi"},
	{Quote: "Peace comes from within. Do not seek it without.", Author: "Buddha"},
	{Quote: "The true meaning of life is to plant trees, under whose shade you do not expect to sit.", Author: "Nelson Henderson"},
}
