package charstats

import (
	"bytes"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Config names the two corpora analyzed by Run.
type Config struct {
	// NativePath is the corpus whose statistics are reported and whose
	// Huffman tree is built.
	NativePath string

	// NativeSkip is the number of leading lines of NativePath to discard.
	NativeSkip int

	// ForeignPath is the corpus scored against the native Huffman tree.
	ForeignPath string

	// ForeignSkip is the number of leading lines of ForeignPath to discard.
	ForeignSkip int
}

// DefaultConfig returns the corpora analyzed when nothing else is specified.
func DefaultConfig() Config {
	return Config{
		NativePath:  "shakespeare.txt",
		NativeSkip:  244,
		ForeignPath: "holmes.txt",
		ForeignSkip: 0,
	}
}

// EntropyReport holds the adjacent-character statistics of one corpus.  X is
// a character and Y is the character that follows it.
type EntropyReport struct {
	HX         float64
	HY         float64
	HYGivenX   float64
	IXY        float64
	TotalChars uint64
	TotalPairs uint64
}

// CodingReport holds the Huffman statistics of a native corpus and of a
// foreign corpus encoded with the native corpus's code.
type CodingReport struct {
	NativeAverageLength  float64
	NativeEntropy        float64
	ForeignAverageLength float64
	ForeignEntropy       float64
}

// Report is the full output of Run.
type Report struct {
	Entropy EntropyReport
	Coding  CodingReport

	// Tree is the Huffman tree built from the native corpus.
	Tree *Tree
}

// AnalyzeEntropy computes H(X), H(Y), H(Y|X) and I(X;Y) over symbols.  Every
// probability, including those of Y and of the pairs, is taken over the
// number of characters rather than the number of pairs.  At least one symbol
// is required.
func AnalyzeEntropy(symbols []Symbol) (EntropyReport, error) {
	px := Tabulate(symbols)
	pxy := TabulatePairs(symbols)
	py := pxy.Marginal()

	totalChars := px.Total()
	totalPairs := pxy.Total()

	var r EntropyReport
	var err error
	r.TotalChars = totalChars
	r.TotalPairs = totalPairs
	if r.HX, err = Entropy(px, totalChars); err != nil {
		return EntropyReport{}, fmt.Errorf("H(X): %w", err)
	}
	if r.HY, err = Entropy(py, totalChars); err != nil {
		return EntropyReport{}, fmt.Errorf("H(Y): %w", err)
	}
	if r.HYGivenX, err = ConditionalEntropy(pxy, px, totalChars); err != nil {
		return EntropyReport{}, fmt.Errorf("H(Y|X): %w", err)
	}
	r.IXY = MutualInformation(r.HY, r.HYGivenX)
	return r, nil
}

// AnalyzeCoding builds a Huffman tree from native and reports its average
// code length over both native and foreign, alongside each corpus's entropy.
func AnalyzeCoding(native, foreign []Symbol) (CodingReport, *Tree, error) {
	pn := Tabulate(native)
	pf := Tabulate(foreign)

	tree, err := BuildTree(pn)
	if err != nil {
		return CodingReport{}, nil, fmt.Errorf("native corpus: %w", err)
	}
	lengths := tree.Lengths()

	var r CodingReport
	if r.NativeAverageLength, err = lengths.AverageLength(pn); err != nil {
		return CodingReport{}, nil, fmt.Errorf("native corpus: %w", err)
	}
	if r.NativeEntropy, err = Entropy(pn, pn.Total()); err != nil {
		return CodingReport{}, nil, fmt.Errorf("native corpus: %w", err)
	}
	if r.ForeignAverageLength, err = lengths.AverageLength(pf); err != nil {
		return CodingReport{}, nil, fmt.Errorf("foreign corpus: %w", err)
	}
	if r.ForeignEntropy, err = Entropy(pf, pf.Total()); err != nil {
		return CodingReport{}, nil, fmt.Errorf("foreign corpus: %w", err)
	}
	return r, tree, nil
}

// Run reads both corpora named by cfg and computes the full Report.  Each
// file is read completely and closed before any statistics are computed.
func Run(cfg Config) (*Report, error) {
	native, err := NormalizeFile(cfg.NativePath, cfg.NativeSkip)
	if err != nil {
		return nil, err
	}
	foreign, err := NormalizeFile(cfg.ForeignPath, cfg.ForeignSkip)
	if err != nil {
		return nil, err
	}

	er, err := AnalyzeEntropy(native)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.NativePath, err)
	}
	cr, tree, err := AnalyzeCoding(native, foreign)
	if err != nil {
		return nil, err
	}
	return &Report{Entropy: er, Coding: cr, Tree: tree}, nil
}

// WriteText writes the report as human-readable lines.
func (r *Report) WriteText(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "H(X): %v\n", r.Entropy.HX)
	fmt.Fprintf(&buf, "H(Y): %v\n", r.Entropy.HY)
	fmt.Fprintf(&buf, "H(Y|X): %v\n", r.Entropy.HYGivenX)
	fmt.Fprintf(&buf, "I(X;Y): %v\n", r.Entropy.IXY)
	fmt.Fprintf(&buf, "Average length (native): %v\n", r.Coding.NativeAverageLength)
	fmt.Fprintf(&buf, "Entropy (native): %v\n", r.Coding.NativeEntropy)
	fmt.Fprintf(&buf, "Average length (foreign, using native code): %v\n", r.Coding.ForeignAverageLength)
	fmt.Fprintf(&buf, "Entropy (foreign): %v\n", r.Coding.ForeignEntropy)
	return buf.WriteTo(w)
}

// AsStruct converts the report into a protobuf Struct.
func (r *Report) AsStruct() (*structpb.Struct, error) {
	m := map[string]interface{}{
		"entropy": map[string]interface{}{
			"h_x":         r.Entropy.HX,
			"h_y":         r.Entropy.HY,
			"h_y_given_x": r.Entropy.HYGivenX,
			"i_xy":        r.Entropy.IXY,
			"total_chars": float64(r.Entropy.TotalChars),
			"total_pairs": float64(r.Entropy.TotalPairs),
		},
		"coding": map[string]interface{}{
			"native_average_length":  r.Coding.NativeAverageLength,
			"native_entropy":         r.Coding.NativeEntropy,
			"foreign_average_length": r.Coding.ForeignAverageLength,
			"foreign_entropy":        r.Coding.ForeignEntropy,
		},
	}
	if r.Tree != nil {
		codes := r.Tree.Codes()
		table := make(map[string]interface{}, r.Tree.NumLeaves())
		for _, sym := range r.Tree.Leaves() {
			table[sym.String()] = codes[sym].Bitstring()
		}
		m["codes"] = table
	}
	return structpb.NewStruct(m)
}

// WriteJSON writes the report as a JSON object.
func (r *Report) WriteJSON(w io.Writer) (int64, error) {
	s, err := r.AsStruct()
	if err != nil {
		return 0, err
	}
	raw, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return 0, err
	}
	raw = append(raw, '\n')
	n, err := w.Write(raw)
	return int64(n), err
}
