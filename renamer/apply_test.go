package renamer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestFiles(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
		if err := os.WriteFile(paths[i], []byte("content of "+name), 0644); err != nil {
			t.Fatalf("Failed to create test file %s: %v", name, err)
		}
	}
	return paths
}

func TestApplyRenameInPlace(t *testing.T) {
	dir := t.TempDir()
	paths := writeTestFiles(t, dir, "holiday.jpg", "beach.jpg")

	scheme := Scheme{Prefix: "2024_"}
	report := Apply(context.Background(), EntriesFor(paths), scheme, nil)

	if report.Status != StatusSuccess {
		t.Fatalf("Status = %q, expected success (message: %s)", report.Status, report.Message)
	}
	if report.Message != "Renamed 2 files successfully" {
		t.Errorf("Message = %q", report.Message)
	}
	if len(report.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(report.Results))
	}

	for i, want := range []string{"2024_holiday.jpg", "2024_beach.jpg"} {
		result := report.Results[i]
		if result.Outcome != OutcomeSuccess {
			t.Errorf("Result %d outcome = %q, expected success", i, result.Outcome)
		}
		if result.NewPath != filepath.Join(dir, want) {
			t.Errorf("Result %d NewPath = %q, expected %q", i, result.NewPath, filepath.Join(dir, want))
		}
		if _, err := os.Stat(result.NewPath); err != nil {
			t.Errorf("Renamed file %s missing: %v", want, err)
		}
		if _, err := os.Stat(paths[i]); !os.IsNotExist(err) {
			t.Errorf("Original file %s still present", paths[i])
		}
	}
}

func TestApplyDestinationExistsIsolated(t *testing.T) {
	dir := t.TempDir()
	paths := writeTestFiles(t, dir, "one.jpg", "two.jpg", "three.jpg")
	// Occupy the name the second entry will compute.
	writeTestFiles(t, dir, "img_02.jpg")

	scheme := Scheme{
		ReplaceName:   true,
		NewName:       "img",
		UseNumbering:  true,
		NumberOptions: DefaultNumberOptions(),
	}
	report := Apply(context.Background(), EntriesFor(paths), scheme, nil)

	if report.Status != StatusPartial {
		t.Fatalf("Status = %q, expected partial", report.Status)
	}
	if report.Message != "Renamed 2 files successfully, 1 failed" {
		t.Errorf("Message = %q", report.Message)
	}

	if report.Results[0].Outcome != OutcomeSuccess {
		t.Errorf("First entry outcome = %q, expected success", report.Results[0].Outcome)
	}
	if report.Results[1].Outcome != OutcomeDestinationExists {
		t.Errorf("Blocked entry outcome = %q, expected %q", report.Results[1].Outcome, OutcomeDestinationExists)
	}
	if report.Results[1].Err == nil {
		t.Error("Blocked entry should carry the underlying error")
	}
	if report.Results[2].Outcome != OutcomeSuccess {
		t.Errorf("Third entry outcome = %q, expected success", report.Results[2].Outcome)
	}

	// The blocked source must be untouched, and the obstacle intact.
	if _, err := os.Stat(paths[1]); err != nil {
		t.Errorf("Blocked source file was moved: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "img_02.jpg"))
	if err != nil || string(data) != "content of img_02.jpg" {
		t.Errorf("Obstacle file was overwritten: %q, %v", data, err)
	}
}

func TestApplyFileNotFound(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "gone.jpg")

	report := Apply(context.Background(), EntriesFor([]string{missing}), Scheme{Prefix: "x_"}, nil)

	if report.Status != StatusError {
		t.Errorf("Status = %q, expected error", report.Status)
	}
	if report.Results[0].Outcome != OutcomeFileNotFound {
		t.Errorf("Outcome = %q, expected %q", report.Results[0].Outcome, OutcomeFileNotFound)
	}
	if report.Message != "Renamed 0 files successfully, 1 failed" {
		t.Errorf("Message = %q", report.Message)
	}
}

func TestApplyMoveToCreatedFolder(t *testing.T) {
	dir := t.TempDir()
	paths := writeTestFiles(t, dir, "doc.txt")
	dest := filepath.Join(dir, "sorted", "2024")

	report := Apply(context.Background(), EntriesFor(paths), Scheme{Suffix: "_v2"}, &ApplyOptions{DestDir: dest})

	if report.Status != StatusSuccess {
		t.Fatalf("Status = %q, expected success (message: %s)", report.Status, report.Message)
	}
	moved := filepath.Join(dest, "doc_v2.txt")
	if report.Results[0].NewPath != moved {
		t.Errorf("NewPath = %q, expected %q", report.Results[0].NewPath, moved)
	}
	data, err := os.ReadFile(moved)
	if err != nil {
		t.Fatalf("Moved file missing: %v", err)
	}
	if string(data) != "content of doc.txt" {
		t.Errorf("Moved content = %q", data)
	}
	if _, err := os.Stat(paths[0]); !os.IsNotExist(err) {
		t.Error("Source file still present after move")
	}
}

func TestApplyDestinationCreationFailure(t *testing.T) {
	dir := t.TempDir()
	paths := writeTestFiles(t, dir, "a.jpg", "blocker")
	// A path below a regular file cannot be created.
	dest := filepath.Join(dir, "blocker", "sub")

	report := Apply(context.Background(), EntriesFor(paths[:1]), DefaultScheme(), &ApplyOptions{DestDir: dest})

	if report.Status != StatusError {
		t.Errorf("Status = %q, expected error", report.Status)
	}
	if len(report.Results) != 0 {
		t.Errorf("Expected no results before setup failure, got %d", len(report.Results))
	}
	if !strings.HasPrefix(report.Message, "Failed to create destination folder") {
		t.Errorf("Message = %q", report.Message)
	}
	if _, err := os.Stat(paths[0]); err != nil {
		t.Errorf("Source file touched despite setup failure: %v", err)
	}
}

func TestApplyCancellation(t *testing.T) {
	dir := t.TempDir()
	paths := writeTestFiles(t, dir, "a.jpg", "b.jpg", "c.jpg")

	ctx, cancel := context.WithCancel(context.Background())
	opts := &ApplyOptions{
		OnResult: func(done, total int, result ApplyResult) {
			if done == 1 {
				cancel()
			}
		},
	}
	report := Apply(ctx, EntriesFor(paths), Scheme{Prefix: "x_"}, opts)

	if report.Status != StatusPartial {
		t.Fatalf("Status = %q, expected partial", report.Status)
	}
	if report.Results[0].Outcome != OutcomeSuccess {
		t.Errorf("First outcome = %q, expected success", report.Results[0].Outcome)
	}
	for i, result := range report.Results[1:] {
		if result.Outcome != OutcomeCanceled {
			t.Errorf("Result %d outcome = %q, expected canceled", i+1, result.Outcome)
		}
	}
	// Remaining files must not have been renamed.
	for _, p := range paths[1:] {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("Canceled entry %s was renamed: %v", p, err)
		}
	}
	if report.Message != "Renamed 1 files successfully, 2 failed" {
		t.Errorf("Message = %q", report.Message)
	}
}

func TestApplyAlreadyCanceled(t *testing.T) {
	dir := t.TempDir()
	paths := writeTestFiles(t, dir, "a.jpg")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report := Apply(ctx, EntriesFor(paths), Scheme{Prefix: "x_"}, nil)

	if report.Status != StatusError {
		t.Errorf("Status = %q, expected error", report.Status)
	}
	if _, err := os.Stat(paths[0]); err != nil {
		t.Errorf("File renamed despite canceled context: %v", err)
	}
}

func TestApplyEmptyBatch(t *testing.T) {
	report := Apply(context.Background(), nil, DefaultScheme(), nil)

	if report.Status != StatusSuccess {
		t.Errorf("Status = %q, expected success", report.Status)
	}
	if len(report.Results) != 0 {
		t.Errorf("Expected no results, got %d", len(report.Results))
	}
	if report.Message != "Renamed 0 files successfully" {
		t.Errorf("Message = %q", report.Message)
	}
}

func TestApplyIdentityRename(t *testing.T) {
	dir := t.TempDir()
	paths := writeTestFiles(t, dir, "same.jpg")

	// The identity scheme renames a file onto itself, which must count
	// as success rather than a destination conflict.
	report := Apply(context.Background(), EntriesFor(paths), DefaultScheme(), nil)

	if report.Status != StatusSuccess {
		t.Errorf("Status = %q, expected success (message: %s)", report.Status, report.Message)
	}
	if _, err := os.Stat(paths[0]); err != nil {
		t.Errorf("File missing after identity rename: %v", err)
	}
}

func TestApplyOnResultOrdering(t *testing.T) {
	dir := t.TempDir()
	paths := writeTestFiles(t, dir, "a.jpg", "b.jpg", "c.jpg")

	var dones []int
	var originals []string
	opts := &ApplyOptions{
		OnResult: func(done, total int, result ApplyResult) {
			if total != 3 {
				t.Errorf("OnResult total = %d, expected 3", total)
			}
			dones = append(dones, done)
			originals = append(originals, result.OriginalPath)
		},
	}
	Apply(context.Background(), EntriesFor(paths), Scheme{Prefix: "n_"}, opts)

	if len(dones) != 3 || dones[0] != 1 || dones[1] != 2 || dones[2] != 3 {
		t.Errorf("OnResult done counts = %v, expected [1 2 3]", dones)
	}
	for i, p := range paths {
		if originals[i] != p {
			t.Errorf("OnResult order mismatch at %d: %q != %q", i, originals[i], p)
		}
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src.bin")
	target := filepath.Join(dir, "dst.bin")
	content := strings.Repeat("payload ", 512)
	if err := os.WriteFile(source, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}

	if err := copyFile(source, target); err != nil {
		t.Fatalf("copyFile() error = %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("Target missing: %v", err)
	}
	if string(data) != content {
		t.Error("Target content differs from source")
	}
	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Stat target: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Target mode = %v, expected 0600", info.Mode().Perm())
	}
	// copyFile leaves the source in place; moveFile removes it afterwards.
	if _, err := os.Stat(source); err != nil {
		t.Errorf("Source removed by copy: %v", err)
	}
}

func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src.txt")
	target := filepath.Join(dir, "sub", "dst.txt")
	if err := os.WriteFile(source, []byte("move me"), 0644); err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		t.Fatalf("Failed to create target dir: %v", err)
	}

	if err := moveFile(source, target); err != nil {
		t.Fatalf("moveFile() error = %v", err)
	}
	if _, err := os.Stat(source); !os.IsNotExist(err) {
		t.Error("Source still present after move")
	}
	if data, err := os.ReadFile(target); err != nil || string(data) != "move me" {
		t.Errorf("Target content = %q, err = %v", data, err)
	}
}

func TestEntriesFor(t *testing.T) {
	entries := EntriesFor([]string{"/a", "/b", "/c"})
	for i, entry := range entries {
		if entry.Index != i {
			t.Errorf("Entry %d index = %d", i, entry.Index)
		}
	}
	if len(EntriesFor(nil)) != 0 {
		t.Error("EntriesFor(nil) should be empty")
	}
}
