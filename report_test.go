package charstats

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCorpus(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.NativePath != "shakespeare.txt" || cfg.NativeSkip != 244 {
		t.Errorf("unexpected native defaults: %+v", cfg)
	}
	if cfg.ForeignPath != "holmes.txt" || cfg.ForeignSkip != 0 {
		t.Errorf("unexpected foreign defaults: %+v", cfg)
	}
}

func TestAnalyzeEntropy(t *testing.T) {
	symbols := mustParseSymbols(t, "ABCABD")
	r, err := AnalyzeEntropy(symbols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.TotalChars != 6 || r.TotalPairs != 5 {
		t.Errorf("expected 6 chars and 5 pairs, got %d and %d", r.TotalChars, r.TotalPairs)
	}

	px := Tabulate(symbols)
	hx, _ := Entropy(px, 6)
	if r.HX != hx {
		t.Errorf("H(X): expected %v, got %v", hx, r.HX)
	}
	pxy := TabulatePairs(symbols)
	hy, _ := Entropy(pxy.Marginal(), 6)
	if r.HY != hy {
		t.Errorf("H(Y): expected %v, got %v", hy, r.HY)
	}
	hyx, _ := ConditionalEntropy(pxy, px, 6)
	if r.HYGivenX != hyx {
		t.Errorf("H(Y|X): expected %v, got %v", hyx, r.HYGivenX)
	}
}

func TestAnalyzeEntropy_KnownValues(t *testing.T) {
	type testRow struct {
		name string
		text string
		hx   float64
		hy   float64
		hyx  float64
		ixy  float64
	}

	testData := [...]testRow{
		{
			name: "hamlet",
			text: "To be, or not to be: that is the question.",
			hx:   3.259917946069017,
			hy:   3.23041247994874,
			hyx:  1.4064842588970443,
			ixy:  1.8239282210516958,
		},
		{
			name: "dickens",
			text: "It was the best of times, it was the worst of times, it was the age of wisdom, it was the age of foolishness.",
			hx:   3.5364940422692963,
			hy:   3.5140468261469717,
			hyx:  1.4890413144211543,
			ixy:  2.0250055117258174,
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			r, err := AnalyzeEntropy(NormalizeString(row.text, 0))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			check := func(name string, expect, actual float64) {
				if math.Abs(expect-actual) > 1e-12 {
					t.Errorf("%s: expected %.15f, got %.15f", name, expect, actual)
				}
			}
			check("H(X)", row.hx, r.HX)
			check("H(Y)", row.hy, r.HY)
			check("H(Y|X)", row.hyx, r.HYGivenX)
			check("I(X;Y)", row.ixy, r.IXY)
		})
	}
}

func TestAnalyzeEntropy_SingleSymbol(t *testing.T) {
	r, err := AnalyzeEntropy(mustParseSymbols(t, "A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.TotalPairs != 0 {
		t.Errorf("expected 0 pairs, got %d", r.TotalPairs)
	}
	if r.HY != 0 || r.HYGivenX != 0 || r.IXY != 0 {
		t.Errorf("expected H(Y), H(Y|X) and I(X;Y) to be 0, got %v, %v, %v", r.HY, r.HYGivenX, r.IXY)
	}
}

func TestAnalyzeEntropy_Empty(t *testing.T) {
	_, err := AnalyzeEntropy(nil)
	var degenerate *DegenerateError
	if !errors.As(err, &degenerate) {
		t.Errorf("expected *DegenerateError, got %T: %v", err, err)
	}
}

func TestAnalyzeCoding(t *testing.T) {
	native := mustParseSymbols(t, "CACBC$")
	foreign := mustParseSymbols(t, "AB$")

	r, tree, err := AnalyzeCoding(native, foreign)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.NumLeaves() != 4 {
		t.Errorf("expected 4 leaves, got %d", tree.NumLeaves())
	}
	if r.NativeAverageLength < r.NativeEntropy {
		t.Errorf("native average length %v < entropy %v", r.NativeAverageLength, r.NativeEntropy)
	}
	if r.ForeignAverageLength <= 0 {
		t.Errorf("expected positive foreign average length, got %v", r.ForeignAverageLength)
	}
}

func TestAnalyzeCoding_MissingSymbol(t *testing.T) {
	_, _, err := AnalyzeCoding(mustParseSymbols(t, "ABAB"), mustParseSymbols(t, "ABQ"))
	var missing *MissingSymbolError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingSymbolError, got %T: %v", err, err)
	}
	if !strings.HasPrefix(err.Error(), "foreign corpus: ") {
		t.Errorf("expected error to name the foreign corpus, got %q", err.Error())
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		NativePath:  writeCorpus(t, dir, "native.txt", "PREAMBLE TO SKIP\nthe quick brown fox jumps over the lazy dog\n"),
		NativeSkip:  1,
		ForeignPath: writeCorpus(t, dir, "foreign.txt", "A lazy dog, a quick fox.\n"),
	}

	r, err := Run(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Tree.NumLeaves() != 27 {
		t.Errorf("expected a pangram to cover all 27 symbols, got %d", r.Tree.NumLeaves())
	}

	var text strings.Builder
	if _, err := r.WriteText(&text); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	for _, prefix := range []string{"H(X): ", "H(Y): ", "H(Y|X): ", "I(X;Y): ", "Average length (native): ", "Entropy (foreign): "} {
		if !strings.Contains(text.String(), "\n"+prefix) && !strings.HasPrefix(text.String(), prefix) {
			t.Errorf("expected a line starting with %q in:\n%s", prefix, text.String())
		}
	}

	var raw strings.Builder
	if _, err := r.WriteJSON(&raw); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var decoded struct {
		Entropy struct {
			HX         float64 `json:"h_x"`
			TotalChars float64 `json:"total_chars"`
		} `json:"entropy"`
		Coding struct {
			NativeAverageLength float64 `json:"native_average_length"`
		} `json:"coding"`
		Codes map[string]string `json:"codes"`
	}
	if err := json.Unmarshal([]byte(raw.String()), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, raw.String())
	}
	if decoded.Entropy.HX != r.Entropy.HX {
		t.Errorf("h_x: expected %v, got %v", r.Entropy.HX, decoded.Entropy.HX)
	}
	if decoded.Entropy.TotalChars != float64(r.Entropy.TotalChars) {
		t.Errorf("total_chars: expected %d, got %v", r.Entropy.TotalChars, decoded.Entropy.TotalChars)
	}
	if decoded.Coding.NativeAverageLength != r.Coding.NativeAverageLength {
		t.Errorf("native_average_length: expected %v, got %v", r.Coding.NativeAverageLength, decoded.Coding.NativeAverageLength)
	}
	if len(decoded.Codes) != 27 {
		t.Errorf("expected 27 codes, got %d", len(decoded.Codes))
	}
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		NativePath:  writeCorpus(t, dir, "native.txt", "some text\n"),
		ForeignPath: filepath.Join(dir, "missing.txt"),
	}

	_, err := Run(cfg)
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *InputError, got %T: %v", err, err)
	}
	if inputErr.Path != cfg.ForeignPath {
		t.Errorf("expected path %q, got %q", cfg.ForeignPath, inputErr.Path)
	}
}
