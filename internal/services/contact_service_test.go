package services

import "testing"

func TestFilterMessage(t *testing.T) {
	cs := NewContactService(nil)

	tests := []struct {
		name       string
		message    string
		wantOK     bool
		wantReason string
	}{
		{"legitimate message", "Hello, I would like to volunteer with your food distribution program.", true, ""},
		{"empty message", "", false, "empty_message"},
		{"spam word", "Buy cheap viagra online now", false, "spam_detected"},
		{"spam word mixed case", "Best CASINO bonuses today", false, "spam_detected"},
		{"spam word mid-sentence", "our seo service will rank you #1", false, "spam_detected"},
		{"two links are fine", "See https://example.org and https://example.com for details", true, ""},
		{"three links are not", "https://a.example https://b.example https://c.example", false, "too_many_links"},
		{"repeated characters", "hellooooooo is anyone there", false, "spam_detected"},
		{"word containing a spam word is fine", "I work at the Casinova community center", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := cs.FilterMessage(tt.message)
			if ok != tt.wantOK {
				t.Fatalf("FilterMessage(%q) ok = %v, want %v (reason %q)", tt.message, ok, tt.wantOK, reason)
			}
			if reason != tt.wantReason {
				t.Fatalf("FilterMessage(%q) reason = %q, want %q", tt.message, reason, tt.wantReason)
			}
		})
	}
}
