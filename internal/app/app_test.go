package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/zenscore/internal/acquire"
	"github.com/blackwell-systems/zenscore/internal/health"
	"github.com/blackwell-systems/zenscore/internal/period"
	"github.com/blackwell-systems/zenscore/internal/store"
	"github.com/blackwell-systems/zenscore/internal/trend"
)

func TestCommands_Registered(t *testing.T) {
	want := []string{"log", "import", "score", "weekly", "monthly", "trends", "suggest", "history"}
	registered := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("%s subcommand not registered on rootCmd", name)
		}
	}
}

// --- log ---

func resetLogFlags(t *testing.T) {
	t.Helper()
	logDate, logStart, logEnd = "", "", ""
	t.Cleanup(func() { logDate, logStart, logEnd = "", "", "" })
}

func TestBuildLogSample_Date(t *testing.T) {
	resetLogFlags(t)
	logDate = "2026-03-10"

	s, err := buildLogSample([]string{"resting_hr", "58"}, time.Now(), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, acquire.KindRestingHR, s.Kind)
	assert.Equal(t, 58.0, s.Value)
	assert.Equal(t, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), s.Start)
	assert.Equal(t, s.Start, s.End)
}

func TestBuildLogSample_DefaultsToNow(t *testing.T) {
	resetLogFlags(t)
	now := time.Date(2026, 3, 10, 8, 15, 0, 0, time.UTC)

	s, err := buildLogSample([]string{"STEPS", "8400"}, now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, acquire.KindSteps, s.Kind)
	assert.Equal(t, now, s.Start)
}

func TestBuildLogSample_SleepIntervalInfersHours(t *testing.T) {
	resetLogFlags(t)
	logStart = "2026-03-09T23:00:00Z"
	logEnd = "2026-03-10T06:30:00Z"

	s, err := buildLogSample([]string{"sleep"}, time.Now(), time.UTC)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, s.Value, 1e-9)
	assert.InDelta(t, 7.5, s.Hours(), 1e-9)
}

func TestBuildLogSample_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		start   string
		end     string
		wantErr error
	}{
		{name: "unknown kind", args: []string{"mood", "3"}, wantErr: acquire.ErrUnknownKind},
		{name: "negative value", args: []string{"hrv", "-4"}, wantErr: acquire.ErrInvalidSample},
		{name: "reversed interval", args: []string{"sleep", "7"}, start: "2026-03-10T06:00:00Z", end: "2026-03-09T23:00:00Z", wantErr: acquire.ErrInvalidSample},
		{name: "missing value", args: []string{"steps"}},
		{name: "bad value", args: []string{"steps", "many"}},
		{name: "bad start", args: []string{"sleep", "7"}, start: "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetLogFlags(t)
			logStart, logEnd = tt.start, tt.end

			_, err := buildLogSample(tt.args, time.Now(), time.UTC)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// --- import ---

func TestReadSamplesCSV(t *testing.T) {
	in := `kind,start,end,value
# exported 2026-03-10
sleep,2026-03-09T23:00:00Z,2026-03-10T06:00:00Z,
resting_hr,2026-03-10T07:00:00Z,,58
steps, 2026-03-10T20:00:00Z,,8400
`
	samples, err := readSamplesCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, acquire.KindSleep, samples[0].Kind)
	assert.InDelta(t, 7.0, samples[0].Value, 1e-9)
	assert.Equal(t, acquire.KindRestingHR, samples[1].Kind)
	assert.Equal(t, samples[1].Start, samples[1].End)
	assert.Equal(t, 8400.0, samples[2].Value)
}

func TestReadSamplesCSV_NoHeader(t *testing.T) {
	samples, err := readSamplesCSV(strings.NewReader("hrv,2026-03-10T07:00:00Z,,52\n"))
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 52.0, samples[0].Value)
}

func TestReadSamplesCSV_ReportsLine(t *testing.T) {
	in := "kind,start,end,value\nhrv,2026-03-10T07:00:00Z,,52\nhrv,not-a-time,,50\n"
	_, err := readSamplesCSV(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestReadSamplesCSV_WrongFieldCount(t *testing.T) {
	_, err := readSamplesCSV(strings.NewReader("hrv,2026-03-10T07:00:00Z,52\n"))
	assert.Error(t, err)
}

// --- helpers ---

func TestParseDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2026, 3, 10, 22, 30, 0, 0, loc)

	got, err := parseDay("", loc, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), got)

	got, err = parseDay("2026-02-28", loc, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, loc), got)

	_, err = parseDay("28/02/2026", loc, now)
	assert.Error(t, err)
}

func TestMetricTrends(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	start, _ := period.Bounds(period.TwoMonthDays, now)

	var snaps []health.Snapshot
	for off := 0; off <= period.TwoMonthDays; off += 5 {
		m := health.Metrics{Sleep: 6, RestingHR: 65, HRV: 40, ActivityLoad: 450}
		if off >= period.MonthDays {
			m = health.Metrics{Sleep: 7.5, RestingHR: 58, HRV: 40, ActivityLoad: 450}
		}
		snaps = append(snaps, health.MustSnapshot(start.AddDate(0, 0, off), m))
	}

	s, err := period.TwoMonth(snaps, now)
	require.NoError(t, err)

	got := metricTrends(s)
	require.Len(t, got, len(health.AllMetrics))

	byMetric := map[health.Metric]metricTrend{}
	for _, mt := range got {
		byMetric[mt.Metric] = mt
	}
	assert.Equal(t, trend.Increasing, byMetric[health.MetricSleep].Trend)
	assert.InDelta(t, 25.0, byMetric[health.MetricSleep].Change, 1e-9)
	assert.Equal(t, trend.Increasing, byMetric[health.MetricRestingHR].Trend, "lower resting HR is an improvement")
	assert.Less(t, byMetric[health.MetricRestingHR].Change, 0.0)
	assert.Equal(t, trend.Stable, byMetric[health.MetricHRV].Trend)
	assert.Equal(t, trend.Increasing, byMetric[health.MetricRecoveryScore].Trend)
	assert.Empty(t, byMetric[health.MetricRecoveryScore].Insight)
	assert.NotEmpty(t, byMetric[health.MetricSleep].Insight)
}

func TestMetricTrends_NotTwoMonth(t *testing.T) {
	s, err := period.Weekly(nil, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, metricTrends(s))
}

// --- end to end ---

// run executes the root command with a clean set of flag values.
func run(t *testing.T, args ...string) error {
	t.Helper()
	flagJSON, flagNoColor, flagVerbose, flagConfig = false, false, false, ""
	scoreDate, scoreNoSave = "", false
	weeklyDate, monthlyDate, trendsDate = "", "", ""
	suggestPeriod, suggestLimit, suggestDate = "week", 0, ""
	historyDays = 30
	importSource = ""
	logDate, logStart, logEnd, logSource = "", "", "", "manual"
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func writeFixture(t *testing.T) (cfgPath, csvPath, dbPath string) {
	t.Helper()
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")

	cfgPath = filepath.Join(dir, "config.yaml")
	cfg := fmt.Sprintf("data_dir: %s\ntimezone: UTC\noutput:\n  color: false\n", dataDir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	var b strings.Builder
	b.WriteString("kind,start,end,value\n")
	day := time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 14; i++ {
		d := day.AddDate(0, 0, i).Format(health.DateLayout)
		fmt.Fprintf(&b, "sleep,%sT07:00:00Z,,%.1f\n", d, 6.5+float64(i%3)*0.5)
		fmt.Fprintf(&b, "resting_hr,%sT07:05:00Z,,%d\n", d, 60-i%4)
		fmt.Fprintf(&b, "hrv,%sT07:05:00Z,,%d\n", d, 45+i)
		fmt.Fprintf(&b, "active_energy,%sT20:00:00Z,,350\n", d)
		fmt.Fprintf(&b, "steps,%sT20:00:00Z,,7500\n", d)
	}
	csvPath = filepath.Join(dir, "samples.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(b.String()), 0o600))

	return cfgPath, csvPath, filepath.Join(dataDir, "zenscore.db")
}

func TestEndToEnd(t *testing.T) {
	cfgPath, csvPath, dbPath := writeFixture(t)

	require.NoError(t, run(t, "import", csvPath, "--config", cfgPath))
	require.NoError(t, run(t, "score", "--date", "2026-03-10", "--config", cfgPath, "--json"))
	require.NoError(t, run(t, "weekly", "--date", "2026-03-10", "--config", cfgPath))
	require.NoError(t, run(t, "monthly", "--date", "2026-03-10", "--config", cfgPath, "--json"))
	require.NoError(t, run(t, "trends", "--date", "2026-03-10", "--config", cfgPath))
	require.NoError(t, run(t, "suggest", "--period", "month", "--limit", "3", "--date", "2026-03-10", "--config", cfgPath))
	require.NoError(t, run(t, "history", "--config", cfgPath))

	db, err := store.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	n, err := db.CountSamples(string(acquire.KindHRV))
	require.NoError(t, err)
	assert.Equal(t, 14, n)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	rows, err := db.DailyScores(day, day)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-03-10", rows[0].Day)
	assert.Greater(t, rows[0].RecoveryScore, 0.0)
	assert.NotEmpty(t, rows[0].Status)
}

func TestScore_SavesDayWithZeroMeasurement(t *testing.T) {
	cfgPath, _, dbPath := writeFixture(t)

	require.NoError(t, run(t, "log", "sleep", "0", "--date", "2026-03-10", "--config", cfgPath))
	require.NoError(t, run(t, "score", "--date", "2026-03-10", "--config", cfgPath))
	require.NoError(t, run(t, "score", "--date", "2026-03-11", "--config", cfgPath))

	db, err := store.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.DailyScores(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, rows, 1, "only the day with a sample is saved")
	assert.Equal(t, "2026-03-10", rows[0].Day)
	assert.Zero(t, rows[0].SleepHours)
	assert.Zero(t, rows[0].RecoveryScore)
}

func TestEndToEnd_Errors(t *testing.T) {
	cfgPath, _, _ := writeFixture(t)

	assert.Error(t, run(t, "suggest", "--period", "fortnight", "--config", cfgPath))
	assert.Error(t, run(t, "history", "--days", "0", "--config", cfgPath))
	assert.Error(t, run(t, "weekly", "--date", "March 10", "--config", cfgPath))

	err := run(t, "import", filepath.Join(t.TempDir(), "missing.csv"), "--config", cfgPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
