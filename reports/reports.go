package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/dustin/go-humanize"
	quickchartgo "github.com/henomis/quickchart-go"

	"phrasebot/phrases"
)

// Tally is an element that counts every text written into it.
type Tally struct {
	mu     sync.Mutex
	counts map[string]int
	order  []string
	total  int
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

func (t *Tally) SetText(_ context.Context, text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.counts[text]; !ok {
		t.order = append(t.order, text)
	}
	t.counts[text]++
	t.total++
	return nil
}

type Count struct {
	Phrase string
	Draws  int
}

// Counts returns one entry per distinct phrase, most drawn first.
func (t *Tally) Counts() []Count {
	t.mu.Lock()
	defer t.mu.Unlock()
	counts := make([]Count, 0, len(t.order))
	for _, phrase := range t.order {
		counts = append(counts, Count{Phrase: phrase, Draws: t.counts[phrase]})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Draws > counts[j].Draws
	})
	return counts
}

func (t *Tally) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}

// Sample runs the rotator draws times into a fresh tally.
func Sample(ctx context.Context, rotator *phrases.Rotator, draws int) (*Tally, error) {
	if draws < 1 {
		return nil, fmt.Errorf("draws must be positive, got %d", draws)
	}
	tally := NewTally()
	for i := 0; i < draws; i++ {
		if err := rotator.UpdateMessage(ctx, tally); err != nil {
			return nil, err
		}
	}
	return tally, nil
}

// Expected is the share of draws each phrase should get with a fair source.
// A phrase listed twice is expected twice as often.
func Expected(set phrases.Set) map[string]float64 {
	expected := make(map[string]float64)
	for _, phrase := range set.All() {
		expected[phrase] += 1 / float64(set.Len())
	}
	return expected
}

type chartConfig struct {
	Type string    `json:"type"`
	Data chartData `json:"data"`
}

type chartData struct {
	Labels   []string       `json:"labels"`
	Datasets []chartDataset `json:"datasets"`
}

type chartDataset struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

func ChartConfig(tally *Tally) (string, error) {
	counts := tally.Counts()
	config := chartConfig{
		Type: "bar",
		Data: chartData{Datasets: []chartDataset{{Label: "Draws"}}},
	}
	for _, count := range counts {
		config.Data.Labels = append(config.Data.Labels, count.Phrase)
		config.Data.Datasets[0].Data = append(config.Data.Datasets[0].Data, count.Draws)
	}
	b, err := json.Marshal(config)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func createQuickChart(chartConfig string) *quickchartgo.Chart {
	qc := quickchartgo.New()
	qc.Config = chartConfig
	qc.Width = 900
	qc.Height = 500
	qc.Version = "2.9.4"
	qc.BackgroundColor = "white"
	return qc
}

// WriteChart renders the tally as a bar chart PNG through quickchart.io.
func WriteChart(tally *Tally, w io.Writer) error {
	config, err := ChartConfig(tally)
	if err != nil {
		return err
	}
	return createQuickChart(config).Write(w)
}

func Caption(tally *Tally) string {
	counts := tally.Counts()
	if len(counts) == 0 {
		return "No draws"
	}
	top := counts[0]
	return fmt.Sprintf("%s draws over %s distinct phrases\nMost drawn (%s times): %s",
		humanize.Comma(int64(tally.Total())),
		humanize.Comma(int64(len(counts))),
		humanize.Comma(int64(top.Draws)),
		top.Phrase,
	)
}
