package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// writeListings writes a small valid dataset and returns its path.
func writeListings(t *testing.T) string {
	t.Helper()
	const header = "id,name,host_id,host_name,neighbourhood_group,neighbourhood,latitude,longitude,room_type,price,minimum_nights,number_of_reviews,last_review,reviews_per_month,calculated_host_listings_count,availability_365"
	content := header + "\n"
	for i := 1; i <= 5; i++ {
		content += fmt.Sprintf("%d,Listing %d,%d,Host %d,Brooklyn,Williamsburg,40.7,-73.9,Private room,100,2,10,2019-06-01,0.8,1,120\n", i, i, i, i)
	}
	path := filepath.Join(t.TempDir(), "listings.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestRootHelp(t *testing.T) {
	_, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	formatFlag := root.PersistentFlags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("expected --format flag to exist")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("expected --format default 'text', got %q", formatFlag.DefValue)
	}

	dataFlag := root.PersistentFlags().Lookup("data")
	if dataFlag == nil {
		t.Fatal("expected --data flag to exist")
	}
}

func TestSummaryEndToEnd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BNBSTAT_DATA", "")

	_, err := executeCommand("summary", "--data", writeListings(t))
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
}

func TestSummaryWithFilters(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BNBSTAT_DATA", "")

	_, err := executeCommand("summary", "--data", writeListings(t),
		"--borough", "Brooklyn", "--price-max", "200")
	if err != nil {
		t.Fatalf("filtered summary failed: %v", err)
	}
}

func TestSummaryWithoutData(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BNBSTAT_DATA", "")

	_, err := executeCommand("summary")
	if err == nil {
		t.Fatal("expected error when no dataset is configured")
	}
}

func TestDataPathFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BNBSTAT_DATA", "")

	path := writeListings(t)
	t.Setenv("BNBSTAT_DATA", path)

	_, err := executeCommand("summary")
	if err != nil {
		t.Fatalf("summary via BNBSTAT_DATA failed: %v", err)
	}
}

func TestSampleEndToEnd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BNBSTAT_DATA", "")

	_, err := executeCommand("sample", "--data", writeListings(t), "--size", "3")
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
}

func TestExportEndToEnd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BNBSTAT_DATA", "")

	out := filepath.Join(t.TempDir(), "export.csv")
	_, err := executeCommand("export", out, "--data", writeListings(t), "--columns", "price,neighbourhood")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("export file missing: %v", err)
	}
}
