package gen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/cosmoos/voicegen/internal/bank"
	"github.com/cosmoos/voicegen/internal/corpus"
)

type levelQuery struct {
	queryType string
	phrases   []string
}

var levelQueries = []levelQuery{
	{"levelStatus", []string{"What's my level", "What level am I", "Show my level", "Level status", "My current level"}},
	{"xpToday", []string{"How much XP today", "XP earned today", "Today's XP", "Show XP today", "What XP did I get"}},
	{"xpBreakdown", []string{"XP breakdown", "Show XP by dimension", "Break down my XP", "XP details"}},
	{"dimensionStatus", []string{"How's my cognitive dimension", "Show creative status", "What's my physiological progress", "Knowledge dimension status"}},
	{"streakStatus", []string{"What's my streak", "How long is my streak", "Current streak", "Show my streak", "Am I on a streak"}},
	{"allStreaks", []string{"Show all streaks", "What streaks do I have", "All my streaks", "Streak summary"}},
	{"badgesEarned", []string{"What badges have I earned", "Show my badges", "My achievements", "Badges unlocked", "Show achievements"}},
	{"badgeProgress", []string{"Badge progress", "How close am I to badges", "Which badges am I close to", "Upcoming badges"}},
	{"activeQuests", []string{"What quests are active", "Show my quests", "Active quests", "Current quests"}},
	{"questProgress", []string{"Quest progress", "How are my quests going", "Quest status"}},
	{"readinessScore", []string{"What's my readiness", "Am I ready to work", "Readiness score", "How ready am I"}},
	{"hrvStatus", []string{"What's my HRV", "Heart rate variability", "HRV status", "How's my HRV"}},
	{"sleepScore", []string{"How did I sleep", "Sleep score", "Sleep quality", "How was my sleep", "Last night's sleep"}},
	{"todayHealth", []string{"Today's health", "Health metrics", "How healthy am I today", "Vitals today"}},
	{"dailySummary", []string{"Daily summary", "How was my day", "Today's summary", "Summarize today"}},
	{"weeklySummary", []string{"Weekly summary", "How was my week", "This week's summary", "Week review"}},
	{"contentPerformance", []string{"How's my content doing", "Content performance", "Content stats", "Post performance"}},
	{"totalReach", []string{"What's my total reach", "How many people have I reached", "Reach metrics", "Content reach"}},
	{"viralCount", []string{"How many viral posts", "Viral content", "Which posts went viral", "Viral count"}},
	{"pipelineStatus", []string{"Content pipeline status", "What's in the pipeline", "Pipeline review"}},
	{"creativeDimension", []string{"Creative dimension status", "How's my creative side", "Creative progress"}},
}

// GenerateLevelSystem covers gamification and health queries. Dimension
// status queries re-pick a phrasing for the drawn dimension so input text
// and the encoded dimension parameter agree.
func GenerateLevelSystem(b *bank.Bank, rng *rand.Rand, n int) ([]corpus.Example, error) {
	examples := make([]corpus.Example, 0, n)
	for i := 0; i < n; i++ {
		q := levelQueries[rng.Intn(len(levelQueries))]
		input := q.phrases[rng.Intn(len(q.phrases))]
		params := []corpus.Param{{Key: "query_type", Value: q.queryType}}

		if q.queryType == "dimensionStatus" {
			dim := b.Dimension()
			params = append(params, corpus.Param{Key: "dimension", Value: dim})
			phrasings := []string{
				fmt.Sprintf("How's my %s dimension", dim),
				fmt.Sprintf("Show %s status", dim),
				fmt.Sprintf("What's my %s progress", dim),
				fmt.Sprintf("%s dimension status", capitalize(dim)),
			}
			input = phrasings[rng.Intn(len(phrasings))]
		}

		examples = append(examples, corpus.Example{
			Input: input,
			Call:  &corpus.Call{Name: "query_level_system", Params: params},
		})
	}
	return examples, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
