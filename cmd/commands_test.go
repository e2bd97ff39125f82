package cmd

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeRoot runs the root command with args and returns what it wrote to stdout.
func executeRoot(t *testing.T, args ...string) string {
	t.Helper()
	t.Cleanup(func() {
		jsonOutput = false
		shotsCSV = ""
		sweepOutput = "-"
		rootCmd.SetArgs(nil)
	})

	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	done := make(chan []byte)
	go func() {
		out, _ := io.ReadAll(r)
		done <- out
	}()

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()
	require.NoError(t, w.Close())
	out := <-done
	require.NoError(t, execErr)
	return string(out)
}

func TestRunCommand_JSONReport(t *testing.T) {
	// GIVEN an expert thrower and a small shot count
	shotsPath := filepath.Join(t.TempDir(), "shots.csv")

	// WHEN run is executed with JSON output and a shots CSV
	out := executeRoot(t, "run", "--seed", "7", "--shots", "200", "--skill", "10",
		"--board-width", "114", "--board-height", "144", "--json", "--shots-csv", shotsPath)

	// THEN the report is valid JSON whose counts cover every shot
	var report RunReport
	require.NoError(t, json.Unmarshal([]byte(out), &report), out)
	assert.Equal(t, int64(7), report.Seed)
	assert.Equal(t, 10.0, report.Skill)
	require.NotNil(t, report.Result)
	assert.Equal(t, 200, report.Result.TotalShots)
	assert.Equal(t, 200, report.Result.InTargetCount+report.Result.OnBoardCount+report.Result.MissedCount)

	// AND the CSV holds a header plus one row per shot
	f, err := os.Open(shotsPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 201)
}

func TestOptimizeCommand_ZeroThresholdPrintsSmallestSize(t *testing.T) {
	out := executeRoot(t, "optimize", "--seed", "7", "--shots", "200", "--skill", "10",
		"--threshold", "0", "--size-min", "60", "--size-max", "200", "--size-step", "2")

	assert.Contains(t, out, "=== Board Optimization ===")
	assert.Contains(t, out, "Optimal Size         : 60 x 60 cm")
	assert.Contains(t, out, "Sizes Evaluated      : 1")
}

func TestSweepCommand_WritesCurveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.csv")

	executeRoot(t, "sweep", "--seed", "7", "--shots", "200", "--skill", "5",
		"--size-min", "60", "--size-max", "70", "--size-step", "5", "--output", path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"size_cm", "coverage_pct"}, rows[0])
	assert.Equal(t, "60", rows[1][0])
	assert.Equal(t, "70", rows[3][0])
}
