// Package assets holds the static style material used when composing
// replies: slang substitutions, emoji, openers, closers, and fallback
// pools. Everything here is immutable after Default() returns.
package assets

import "regexp"

// SlangEntry maps a formal word to its casual variants. Entries are an
// ordered slice, not a map, so substitution passes are deterministic.
type SlangEntry struct {
	Formal   string
	Variants []string

	re *regexp.Regexp
}

// Matches reports whether the formal word appears as a whole word.
func (e *SlangEntry) Matches(text string) bool {
	return e.re.MatchString(text)
}

// Replace swaps every whole-word occurrence of the formal word.
func (e *SlangEntry) Replace(text, variant string) string {
	return e.re.ReplaceAllString(text, variant)
}

// FallbackPools groups canned replies by situation, used when no stored
// knowledge clears the confidence gate.
type FallbackPools struct {
	Question     []string
	Conversation []string
	Learning     []string
}

// StyleAssets is the full static bundle. Openers are keyed by response
// type base; the "conversation" pool contains an empty string so casual
// replies sometimes start without a filler word.
type StyleAssets struct {
	Slang      []SlangEntry
	Emojis     []string
	Closers    []string
	Openers    map[string][]string
	Fallbacks  FallbackPools
	Continuity []string
	GroupJoin  []string
	Identity   []string
}

// Default returns the built-in Indonesian casual style bundle.
func Default() *StyleAssets {
	a := &StyleAssets{
		Slang: []SlangEntry{
			{Formal: "saya", Variants: []string{"gue", "gw", "aku"}},
			{Formal: "kamu", Variants: []string{"lu", "lo", "kamu"}},
			{Formal: "anda", Variants: []string{"lu", "kamu"}},
			{Formal: "tidak", Variants: []string{"gak", "ga", "nggak"}},
			{Formal: "iya", Variants: []string{"iya", "yoi", "yup"}},
			{Formal: "ingin", Variants: []string{"pengen", "mau"}},
			{Formal: "sangat", Variants: []string{"banget", "bgt"}},
			{Formal: "sekali", Variants: []string{"banget", "bener"}},
			{Formal: "bagaimana", Variants: []string{"gimana", "gmn"}},
			{Formal: "mengapa", Variants: []string{"kenapa", "knp"}},
			{Formal: "sudah", Variants: []string{"udah", "udh"}},
			{Formal: "belum", Variants: []string{"belom", "blm"}},
			{Formal: "memang", Variants: []string{"emang", "emg"}},
			{Formal: "begitu", Variants: []string{"gitu", "gt"}},
			{Formal: "begini", Variants: []string{"gini", "gn"}},
			{Formal: "kalau", Variants: []string{"kalo", "klo"}},
			{Formal: "dengan", Variants: []string{"sama", "ama"}},
			{Formal: "teman", Variants: []string{"temen", "bestie"}},
			{Formal: "benar", Variants: []string{"bener", "bnr"}},
			{Formal: "serius", Variants: []string{"seriusan", "beneran"}},
		},
		Emojis: []string{
			"\U0001F602", "\U0001F923", "\U0001F60E", "\U0001F525", "\U0001F44D",
			"\U0001F60A", "\U0001F914", "\U0001F605", "\U0001F631", "\U0001F4AF",
			"\U0001F60F", "✨", "\U0001F648", "\U0001F92A", "\U0001F44C",
		},
		Closers: []string{
			"sih menurutku", "gitu deh", "kalo gak salah ya", "cmiiw",
			"seriusan", "asli", "gak bohong", "percaya deh", "yekan",
		},
		Openers: map[string][]string{
			"factual_question": {
				"Setau gue,", "Kalo gak salah,", "Seinget gue sih,", "Hmm,",
			},
			"how_question": {
				"Gampang kok,", "Biasanya sih,", "Caranya tuh,",
			},
			"why_question": {
				"Soalnya,", "Ya karena,", "Hmm, kayaknya sih,",
			},
			"yesno_question": {
				"Kayaknya sih iya,", "Hmm, bisa jadi,", "Menurut gue sih,",
			},
			"general_question": {
				"Hmm,", "Wah,", "Oh itu,",
			},
			"storytelling": {
				"Jadi gini,", "Oke jadi ceritanya,", "Dengerin nih,",
			},
			"opinion": {
				"Menurut gue sih,", "Kalo kata gue,", "Jujur ya,",
			},
			"joke": {
				"Wkwk,", "Hahaha,", "Nih ya,",
			},
			"laughing": {
				"Wkwkwk,", "Ngakak,", "Wkwk iya,",
			},
			"gratitude": {
				"Sama-sama!", "Santai aja,", "Yoi,",
			},
			"apology": {
				"Gapapa kok,", "Santai,", "It's okay kok,",
			},
			"greeting": {
				"Halo!", "Hai!", "Yoo,",
			},
			"conversation": {
				"", "Iya nih,", "Btw,", "Oh iya,", "Eh,",
			},
		},
		Fallbacks: FallbackPools{
			Question: []string{
				"Waduh, gue belum tau soal itu. Coba ceritain dong, biar gue belajar!",
				"Hmm, pertanyaan bagus tapi gue belum punya jawabannya. Ajarin gue?",
				"Belum nyampe situ ilmu gue wkwk. Lu tau jawabannya?",
				"Jujur gue gak tau, tapi gue penasaran juga sih.",
			},
			Conversation: []string{
				"Oh gitu, terus gimana?",
				"Menarik nih, lanjut dong.",
				"Hmm iya juga ya.",
				"Wah baru tau gue.",
				"Asik, cerita lagi dong.",
			},
			Learning: []string{
				"Gue masih belajar nih, ngobrol terus ya biar gue makin pinter!",
				"Hai! Gue bot yang belajar dari obrolan. Makin sering chat, makin nyambung gue.",
				"Ajak gue ngobrol apa aja, gue lagi nyerap ilmu nih.",
			},
		},
		Continuity: []string{
			"Soal itu, %s",
			"Nyambung yang tadi, %s",
			"Btw tentang itu, %s",
		},
		GroupJoin: []string{
			"Halo semuanya! Gue GaulBot, bot yang belajar dari obrolan kalian. Mention atau reply gue kalo mau ngobrol ya!",
			"Yoo! Makasih udah invite gue ke %s. Gue bakal nyimak dan belajar dari chat di sini. Tag gue kalo butuh!",
			"Hai hai! GaulBot hadir. Santai aja, gue cuma nyimak sambil belajar. Panggil gue kapan aja!",
		},
		Identity: []string{
			"Gue GaulBot! Bot yang belajar ngobrol dari chat kalian. Makin sering diajak ngobrol, makin nyambung gue.",
			"Kenalin, gue GaulBot. Gue nyimak obrolan terus belajar dari situ. Bukan AI canggih sih, tapi lumayan lah wkwk.",
			"GaulBot di sini! Tugas gue simpel: nyimak, belajar, terus bales pake gaya santai.",
		},
	}

	for i := range a.Slang {
		a.Slang[i].re = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(a.Slang[i].Formal) + `\b`)
	}
	return a
}
