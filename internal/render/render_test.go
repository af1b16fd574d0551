// ABOUTME: Tests for table and CSV rendering of ranking results

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stojg/rankcraft/internal/ranking"
)

func sampleResult() ranking.Result {
	return ranking.Result{
		Parameters: ranking.DefaultParameters(),
		Info:       ranking.Info{TotalGames: 3, TotalCompetitors: 2, RankedCompetitors: 2},
		Ranking: []ranking.Entry{
			{Rank: 1, Competitor: "A", InconsistencyScore: 0, SOS: 0.5},
			{Rank: 2, Competitor: "B", InconsistencyScore: 2, SOS: -0.5},
		},
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, sampleResult())

	out := buf.String()
	for _, want := range []string{"A", "B", "Competitor"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, sampleResult()); err != nil {
		t.Fatalf("CSV failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "rank,competitor,inconsistency_score,sos\n") {
		t.Fatalf("unexpected CSV header:\n%s", out)
	}
	if !strings.Contains(out, "1,A,0,") {
		t.Errorf("CSV output missing row for A:\n%s", out)
	}
}
