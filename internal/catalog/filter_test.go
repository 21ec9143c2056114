package catalog

import (
	"testing"
)

func names(templates []Template) []string {
	out := make([]string, len(templates))
	for i, t := range templates {
		out[i] = t.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	all := Default()

	tests := []struct {
		name     string
		query    string
		category Category
		want     []string
	}{
		{
			name: "empty query and no category returns everything in order",
			want: names(all),
		},
		{
			name:  "whitespace query matches all",
			query: "   ",
			want:  names(all),
		},
		{
			name:  "git matches GitHub case-insensitively",
			query: "git",
			want:  []string{"GitHub"},
		},
		{
			name:  "upper-case query",
			query: "STRIPE",
			want:  []string{"Stripe"},
		},
		{
			name:  "description match",
			query: "feature flags",
			want:  []string{"PostHog"},
		},
		{
			name:     "category only",
			category: CategoryAI,
			want:     []string{"Claude Code", "OpenAI"},
		},
		{
			name:     "query and category must both hold",
			query:    "a",
			category: CategoryDevelopment,
			want:     []string{"GitHub", "Vercel", "21st.dev"},
		},
		{
			name:     "query matching another category yields nothing",
			query:    "stripe",
			category: CategoryAI,
			want:     nil,
		},
		{
			name:  "no match",
			query: "kubernetes",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Filter(all, tt.query, tt.category))
			if len(got) != len(tt.want) {
				t.Fatalf("Filter() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Filter()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilter_ExcludesStripeForGit(t *testing.T) {
	for _, tmpl := range Filter(Default(), "git", "") {
		if tmpl.Name == "Stripe" {
			t.Fatal("Filter(git) should not include Stripe")
		}
	}
}
