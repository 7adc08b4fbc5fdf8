// Package suggest produces alternative phrasings for resume content. It is
// deterministic keyword-bucket matching, not model inference: the only
// randomness is the lead-verb pick per bucket, and a fixed artificial delay
// stands in for service latency.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// ErrEmptyInput reports a suggestion request with no usable text.
var ErrEmptyInput = errors.New("input text required")

const DefaultLatency = 1500 * time.Millisecond

var leadVerbs = map[string][]string{
	"leadership":  {"Led", "Directed", "Managed", "Supervised", "Coordinated"},
	"development": {"Developed", "Built", "Created", "Designed", "Implemented"},
	"improvement": {"Optimized", "Enhanced", "Improved", "Streamlined", "Increased"},
	"analysis":    {"Analyzed", "Evaluated", "Assessed", "Researched", "Investigated"},
}

type Generator struct {
	rng     *rand.Rand
	latency time.Duration
}

// New returns a generator seeded for reproducible verb picks. Latency may
// be zero (tests) or DefaultLatency (interactive use).
func New(seed int64, latency time.Duration) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), latency: latency}
}

func (g *Generator) pick(bucket string) string {
	verbs := leadVerbs[bucket]
	return verbs[g.rng.Intn(len(verbs))]
}

// Suggest returns three alternative phrasings for the input, chosen by
// keyword buckets over the lowercased text. The artificial delay honors
// context cancellation.
func (g *Generator) Suggest(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	if g.latency > 0 {
		select {
		case <-time.After(g.latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "manage") || strings.Contains(lower, "lead") || strings.Contains(lower, "team"):
		return []string{
			fmt.Sprintf("• %s cross-functional team of X members to %s, resulting in Y%% improvement in efficiency", g.pick("leadership"), lower),
			fmt.Sprintf("• Successfully %s while mentoring junior staff and implementing best practices across the organization", lower),
			fmt.Sprintf("• Spearheaded %s initiative that delivered measurable results and exceeded performance targets by X%%", lower),
		}, nil
	case strings.Contains(lower, "develop") || strings.Contains(lower, "build") || strings.Contains(lower, "create"):
		return []string{
			fmt.Sprintf("• %s %s using modern technologies, serving X+ users with 99.9%% uptime", g.pick("development"), lower),
			fmt.Sprintf("• Architected and %s that reduced processing time by X%% and improved user satisfaction scores", lower),
			fmt.Sprintf("• Collaborated with stakeholders to %s, delivering project ahead of schedule and under budget", lower),
		}, nil
	case strings.Contains(lower, "improve") || strings.Contains(lower, "optimize") || strings.Contains(lower, "enhance"):
		return []string{
			fmt.Sprintf("• %s %s, achieving X%% performance gain and $Y cost savings annually", g.pick("improvement"), lower),
			fmt.Sprintf("• Implemented data-driven approach to %s, resulting in measurable improvements across key metrics", lower),
			fmt.Sprintf("• Successfully %s through strategic analysis and stakeholder collaboration, exceeding targets by X%%", lower),
		}, nil
	default:
		return []string{
			fmt.Sprintf("• Achieved significant results by %s, demonstrating strong analytical and problem-solving skills", lower),
			fmt.Sprintf("• Successfully executed %s while maintaining high quality standards and meeting tight deadlines", lower),
			fmt.Sprintf("• Leveraged expertise to %s, contributing to team success and organizational objectives", lower),
		}, nil
	}
}
