package analyzer

import (
	"reflect"
	"testing"

	"github.com/sandevgo/gaulbot/internal/core"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "drops stopwords and short tokens",
			text: "saya suka makan nasi goreng di warung itu",
			want: []string{"suka", "makan", "nasi", "goreng", "warung"},
		},
		{
			name: "frequency ranks above first occurrence",
			text: "kopi enak, kopi mantap, teh juga enak, kopi juara",
			want: []string{"kopi", "enak", "mantap", "teh", "juara"},
		},
		{
			name: "all stopwords falls back to length filter",
			text: "saya sudah bisa",
			want: []string{"saya", "sudah", "bisa"},
		},
		{
			name: "caps at max",
			text: "satu dua tiga empat lima enam tujuh delapan sembilan sepuluh",
			want: []string{"satu", "dua", "tiga", "empat", "lima", "enam", "tujuh", "delapan"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.text, DefaultMaxKeywords)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectQuestion(t *testing.T) {
	tests := []struct {
		text     string
		isQ      bool
		wantType core.QuestionType
	}{
		{"apa itu golang?", true, core.QuestionFactual},
		{"siapa presiden pertama", true, core.QuestionFactual},
		{"gimana caranya bikin rendang", true, core.QuestionHow},
		{"kenapa langit biru?", true, core.QuestionWhy},
		{"bukankah begitu?", true, core.QuestionYesNo},
		{"apakah benar?", true, core.QuestionFactual},
		{"serius?", true, core.QuestionGeneral},
		{"cuaca cerah hari ini", false, core.QuestionNone},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			isQ, qt := DetectQuestion(tt.text)
			if isQ != tt.isQ || qt != tt.wantType {
				t.Errorf("DetectQuestion(%q) = (%v, %q), want (%v, %q)",
					tt.text, isQ, qt, tt.isQ, tt.wantType)
			}
		})
	}
}

func TestDetectStyle(t *testing.T) {
	tests := []struct {
		text string
		want core.Style
	}{
		{"gue lagi gabut banget cuy", core.StyleGaul},
		{"saya mohon bantuan anda, terima kasih", core.StyleFormal},
		{"cuaca hari ini cerah", core.StyleNormal},
		{"saya gabut wkwk", core.StyleGaul}, // slang beats formal
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := DetectStyle(tt.text); got != tt.want {
				t.Errorf("DetectStyle(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectSentiment(t *testing.T) {
	tests := []struct {
		text string
		want core.Sentiment
	}{
		{"film ini bagus banget, keren dan seru", core.SentimentPositive},
		{"payah, jelek, kecewa berat sama hasilnya", core.SentimentNegative},
		{"bagus tapi jelek", core.SentimentNeutral},
		{"cuaca hari ini mendung", core.SentimentNeutral},
		{"acaranya menyenangkan sekali", core.SentimentPositive}, // affixed form
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := DetectSentiment(tt.text); got != tt.want {
				t.Errorf("DetectSentiment(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectTopics(t *testing.T) {
	got := DetectTopics("main mobile legends sambil makan bakso")
	want := []string{"kuliner", "games"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectTopics = %v, want %v", got, want)
	}

	if topics := DetectTopics("tidak ada topik di sini"); topics != nil {
		t.Errorf("expected no topics, got %v", topics)
	}
}

func TestAnalyzeShortInput(t *testing.T) {
	for _, text := range []string{"", "ok", "  a  "} {
		f := Analyze(text)
		if len(f.Keywords) != 0 || f.Sentiment != core.SentimentNeutral ||
			f.Style != core.StyleNormal || f.IsQuestion {
			t.Errorf("Analyze(%q) should return defaults, got %+v", text, f)
		}
	}
}

func TestAnalyzeFull(t *testing.T) {
	f := Analyze("kenapa game mobile legends rame banget sih? wkwk")

	if !f.IsQuestion || f.QuestionType != core.QuestionWhy {
		t.Errorf("expected why-question, got (%v, %q)", f.IsQuestion, f.QuestionType)
	}
	if f.Style != core.StyleGaul {
		t.Errorf("expected gaul style, got %q", f.Style)
	}
	if len(f.Topics) == 0 || f.Topics[0] != "games" {
		t.Errorf("expected games topic, got %v", f.Topics)
	}
}

func TestHasEmoji(t *testing.T) {
	if !HasEmoji("mantap \U0001F525") {
		t.Error("fire emoji not detected")
	}
	if HasEmoji("tanpa emoji sama sekali") {
		t.Error("false positive on plain text")
	}
}
